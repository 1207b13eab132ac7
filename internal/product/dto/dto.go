package dto

// Sort fields and directions accepted by product search. The values are the
// external query-parameter vocabulary, not column names.
const (
	SortByName  = "nome"
	SortByPrice = "preco"
	SortByStock = "quantidade_estoque"

	SortAsc  = "asc"
	SortDesc = "desc"
)

type ProductFilters struct {
	Name      string // substring match, empty means no filter
	SortBy    string
	SortOrder string
}
