package domain

import "strings"

// ProductCategory é o conjunto fechado de categorias de produto do painel.
type ProductCategory string

const (
	CategoryPandora     ProductCategory = "Pandora"
	CategoryPixDoMilhao ProductCategory = "PixDoMilhão"
	CategoryCrocs       ProductCategory = "Crocs"
	CategorySephora     ProductCategory = "Sephora"
	CategoryOutros      ProductCategory = "Outros"
)

// AllCategories lista as categorias na ordem fixa de exibição.
var AllCategories = []ProductCategory{
	CategoryPandora,
	CategoryPixDoMilhao,
	CategoryCrocs,
	CategorySephora,
	CategoryOutros,
}

// categoryRules define a classificação por substring, em ordem de prioridade:
// a primeira regra que casar vence. Um nome com "ebook" e "crocs" ao mesmo
// tempo resolve para PixDoMilhão porque "ebook" vem antes na lista.
var categoryRules = []struct {
	substrings []string
	category   ProductCategory
}{
	{[]string{"bracelete"}, CategoryPandora},
	{[]string{"ebook"}, CategoryPixDoMilhao},
	{[]string{"sandália", "crocs", "jibbitz"}, CategoryCrocs},
	{[]string{"kit labia"}, CategorySephora},
}

// CategoryForProduct classifica um nome de produto em uma categoria. A
// comparação é case-insensitive; nomes sem nenhuma substring conhecida caem
// em Outros.
func CategoryForProduct(productName string) ProductCategory {
	name := strings.ToLower(productName)

	for _, rule := range categoryRules {
		for _, substring := range rule.substrings {
			if strings.Contains(name, substring) {
				return rule.category
			}
		}
	}

	return CategoryOutros
}
