package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrdenarPorCriacao(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	docs := []produtorDocID{
		{id: "c", doc: produtorDoc{Nome: "Recente", CreatedAt: base.Add(time.Hour)}},
		{id: "b", doc: produtorDoc{Nome: "Antigo", CreatedAt: base}},
		{id: "a", doc: produtorDoc{Nome: "Legado"}}, // sem created_at
	}

	ordenarPorCriacao(docs)

	// Documentos sem created_at continuam na listagem e vêm primeiro
	assert.Equal(t, []string{"Legado", "Antigo", "Recente"},
		[]string{docs[0].doc.Nome, docs[1].doc.Nome, docs[2].doc.Nome})
}

func TestOrdenarPorCriacao_EmpatePorID(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	docs := []produtorDocID{
		{id: "zz", doc: produtorDoc{Nome: "Z", CreatedAt: base}},
		{id: "aa", doc: produtorDoc{Nome: "A", CreatedAt: base}},
	}

	ordenarPorCriacao(docs)

	assert.Equal(t, "A", docs[0].doc.Nome)
	assert.Equal(t, "Z", docs[1].doc.Nome)
}
