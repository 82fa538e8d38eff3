package domain

// ActivityMaxLen is the storage width of the activity descriptor.
const ActivityMaxLen = 50

// UserProfile is the persisted shape of a submitted profile. The profile
// endpoint does not decode into it yet; only the store schema follows it.
type UserProfile struct {
	ID       int64    `json:"id"`
	Weight   *float64 `json:"peso"`
	Height   *float64 `json:"altura"`
	Age      *int     `json:"edad"`
	Activity *string  `json:"actividad"`
}

// ProfileTable maps UserProfile onto the usuario table.
var ProfileTable = Table{
	Name: "usuario",
	Columns: []Column{
		{Name: "id", Type: "INTEGER", PrimaryKey: true},
		{Name: "peso", Type: "FLOAT"},
		{Name: "altura", Type: "FLOAT"},
		{Name: "edad", Type: "INTEGER"},
		{Name: "actividad", Type: "VARCHAR", Size: ActivityMaxLen},
	},
}
