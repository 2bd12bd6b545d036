package dto

import "io"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistarProdutorRequest struct {
	Nome     string   `json:"nome"     validate:"required,min=1"`
	Morada   string   `json:"morada"   validate:"required,min=1"`
	Telefone string   `json:"telefone" validate:"required,min=1"`
	Produtos []string `json:"produtos" validate:"required,min=1,dive,required"`

	// Optional account fields sent by the registration form in later frontend
	// versions. Absent for plain map-only registrations.
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password"`
}

// FotoUpload carries one product photo from the multipart form. Indice refers
// back to the position in Produtos; files beyond the product list are ignored.
type FotoUpload struct {
	Indice      int
	Nome        string
	ContentType string
	Conteudo    io.Reader
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegistoResponse struct {
	Status    string  `json:"status"`
	Mensagem  string  `json:"mensagem"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ProdutoEntry struct {
	Nome    string `json:"nome"`
	FotoURL string `json:"foto_url"`
}

// ProdutorLocalizacao is one map marker returned by GET /localizacao.
type ProdutorLocalizacao struct {
	ID       string         `json:"id"`
	Nome     string         `json:"nome"`
	Lat      float64        `json:"lat"`
	Lng      float64        `json:"lng"`
	Produtos []ProdutoEntry `json:"produtos"`
	Morada   string         `json:"morada"`
	Telefone string         `json:"telefone"`
}
