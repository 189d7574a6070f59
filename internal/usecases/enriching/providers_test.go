package enriching

import (
	"testing"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("clearbit", func(t *testing.T) {
		n := Normalize(domain.ProviderClearbit, map[string]any{
			"company": map[string]any{
				"name":     "Attra",
				"domain":   "attraveiculos.com.br",
				"category": map[string]any{"industry": "Automotive"},
				"metrics":  map[string]any{"employeesRange": "11-50"},
			},
			"person": map[string]any{
				"employment": map[string]any{"title": "Gerente"},
				"name":       map[string]any{"fullName": "Maria Souza", "givenName": "Maria", "familyName": "Souza"},
			},
		})

		assert.Equal(t, "Attra", *n.CompanyName)
		assert.Equal(t, "attraveiculos.com.br", *n.CompanyDomain)
		assert.Equal(t, "Automotive", *n.CompanyIndustry)
		assert.Equal(t, "11-50", *n.CompanySize)
		assert.Equal(t, "Gerente", *n.JobTitle)
		assert.Equal(t, "Maria", *n.FirstName)
		assert.Nil(t, n.LinkedinURL)
	})

	t.Run("snov", func(t *testing.T) {
		n := Normalize("snov", map[string]any{
			"company":  "Loja X",
			"position": "CEO",
			"linkedin": "https://linkedin.com/in/ceo",
			"name":     "José",
		})
		assert.Equal(t, []string{"company_name", "job_title", "linkedin_url", "full_name"}, n.Fields())
	})

	t.Run("bigdata usa nome fantasia na falta da razão social", func(t *testing.T) {
		n := Normalize("bigdata", map[string]any{"nome_fantasia": "Auto Center", "nome": "Ana"})
		require.NotNil(t, n.CompanyName)
		assert.Equal(t, "Auto Center", *n.CompanyName)
		assert.Equal(t, "Ana", *n.FullName)
	})

	t.Run("provedor desconhecido usa mapeamento genérico", func(t *testing.T) {
		n := Normalize("apollo", map[string]any{"company": "ACME", "job_title": "Dev", "full_name": "Bob", "domain": "acme.com"})
		assert.Equal(t, "ACME", *n.CompanyName)
		assert.Equal(t, "Dev", *n.JobTitle)
		assert.Equal(t, "Bob", *n.FullName)
		assert.Equal(t, "acme.com", *n.CompanyDomain)
	})

	t.Run("valores vazios ou de outro tipo são ignorados", func(t *testing.T) {
		n := Normalize("snov", map[string]any{"company": "  ", "position": 42})
		assert.Empty(t, n.Fields())
	})

	t.Run("sem dados", func(t *testing.T) {
		assert.Empty(t, Normalize("clearbit", nil).Fields())
	})
}
