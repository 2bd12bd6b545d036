package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AtualizarPerfilRequest overwrites the mutable subset of the profile in full.
// There is no merge: omitted fields end up empty, last writer wins.
type AtualizarPerfilRequest struct {
	ID         string   `json:"id"       validate:"required"`
	Nome       string   `json:"nome"     validate:"required,min=1"`
	Telefone   string   `json:"telefone" validate:"required,min=1"`
	Produtos   []string `json:"produtos"`
	Disponivel bool     `json:"disponivel"`
	Foto       string   `json:"foto"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
	Nome   string `json:"nome"`
}

// PerfilResponse is the full record minus the password.
type PerfilResponse struct {
	ID         string         `json:"id"`
	Nome       string         `json:"nome"`
	Morada     string         `json:"morada"`
	Telefone   string         `json:"telefone"`
	Email      string         `json:"email"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Produtos   []ProdutoEntry `json:"produtos"`
	Disponivel bool           `json:"disponivel"`
	Foto       string         `json:"foto,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
