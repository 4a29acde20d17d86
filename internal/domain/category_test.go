package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForProduct(t *testing.T) {
	tests := []struct {
		product  string
		expected ProductCategory
	}{
		{"Bracelete Coração", CategoryPandora},
		{"BRACELETE prata", CategoryPandora},
		{"eBook Renda Extra", CategoryPixDoMilhao},
		{"Sandália Verão", CategoryCrocs},
		{"Crocs Classic", CategoryCrocs},
		{"Jibbitz Pack", CategoryCrocs},
		{"Kit Labia Completo", CategorySephora},
		{"Produto Qualquer", CategoryOutros},
		{"", CategoryOutros},
		// A ordem de prioridade decide quando mais de uma regra casa.
		{"eBook sobre Crocs", CategoryPixDoMilhao},
		{"Bracelete para Sandália", CategoryPandora},
	}

	for _, tt := range tests {
		t.Run(tt.product, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryForProduct(tt.product))
		})
	}
}
