package enriching

import (
	"strings"

	"github.com/attraveiculos/visitor-identity-api/internal/domain"
)

const linkedinProfileURL = "https://linkedin.com/in/"

type normalizer func(data map[string]any) domain.NormalizedEnrichment

// normalizers mapeia cada provedor para o conjunto comum de campos do perfil.
// Provedores desconhecidos usam o mapeamento genérico.
var normalizers = map[string]normalizer{
	domain.ProviderClearbit: normalizeClearbit,
	domain.ProviderSnov:     normalizeSnov,
	domain.ProviderBigData:  normalizeBigData,
}

func Normalize(source string, data map[string]any) domain.NormalizedEnrichment {
	if data == nil {
		return domain.NormalizedEnrichment{}
	}
	if fn, ok := normalizers[strings.ToLower(source)]; ok {
		return fn(data)
	}
	return normalizeGeneric(data)
}

func normalizeClearbit(data map[string]any) domain.NormalizedEnrichment {
	n := domain.NormalizedEnrichment{
		CompanyName:     field(data, "company", "name"),
		CompanyDomain:   field(data, "company", "domain"),
		CompanyIndustry: field(data, "company", "category", "industry"),
		CompanySize:     field(data, "company", "metrics", "employeesRange"),
		JobTitle:        field(data, "person", "employment", "title"),
		FullName:        field(data, "person", "name", "fullName"),
		FirstName:       field(data, "person", "name", "givenName"),
		LastName:        field(data, "person", "name", "familyName"),
	}

	if handle := field(data, "person", "linkedin", "handle"); handle != nil {
		url := linkedinProfileURL + *handle
		n.LinkedinURL = &url
	}

	return n
}

func normalizeSnov(data map[string]any) domain.NormalizedEnrichment {
	return domain.NormalizedEnrichment{
		CompanyName: field(data, "company"),
		JobTitle:    field(data, "position"),
		LinkedinURL: field(data, "linkedin"),
		FullName:    field(data, "name"),
	}
}

// normalizeBigData trata o formato da BigDataCorp (razão social / nome fantasia)
func normalizeBigData(data map[string]any) domain.NormalizedEnrichment {
	return domain.NormalizedEnrichment{
		CompanyName: firstOf(field(data, "razao_social"), field(data, "nome_fantasia")),
		FullName:    field(data, "nome"),
	}
}

func normalizeGeneric(data map[string]any) domain.NormalizedEnrichment {
	return domain.NormalizedEnrichment{
		CompanyName:   firstOf(field(data, "company_name"), field(data, "company")),
		CompanyDomain: field(data, "domain"),
		JobTitle:      firstOf(field(data, "title"), field(data, "job_title")),
		FullName:      firstOf(field(data, "name"), field(data, "full_name")),
	}
}

// field percorre objetos aninhados e devolve a string não vazia no caminho
func field(data map[string]any, path ...string) *string {
	var current any = data
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[key]
	}

	value, ok := current.(string)
	if !ok {
		return nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func firstOf(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
