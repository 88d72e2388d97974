package entity

// Stock is one tradable instrument in the catalog.
// The catalog is populated administratively; this service only reads it.
type Stock struct {
	ID     int64
	Name   string
	Symbol string
	Price  float64
	Status string
}
