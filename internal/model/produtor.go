package model

// ProdutoVenda is one product offered by a producer. The row backend cannot
// store photos, so FotoURL is empty for records read from SQLite.
type ProdutoVenda struct {
	Nome    string `json:"nome"`
	FotoURL string `json:"foto_url"`
}

// Produtor is the single business entity: a seller of local goods shown on
// the map. ID is backend-assigned (a stringified autoincrement integer in
// the row store, a generated document key in Firestore) and never changes.
type Produtor struct {
	ID        string
	Nome      string
	Morada    string
	Telefone  string
	Latitude  float64
	Longitude float64
	Produtos  []ProdutoVenda

	// Auth/profile fields, only meaningful for producers that registered an
	// account. Password is stored and compared as plaintext, a deliberate
	// carry-over from the existing frontend contract.
	Email      string
	Password   string
	Disponivel bool
	Foto       string
}
