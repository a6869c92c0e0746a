package resolver

import (
	"testing"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/stretchr/testify/assert"
)

func TestUnitMatchKeywords(t *testing.T) {
	tests := map[string]struct {
		categories  []models.Category
		productName string
		wantID      int64
		wantOk      bool
	}{
		"phrase contained in product name": {
			categories: []models.Category{
				{ID: 1, Keywords: []string{"посуд"}},
				{ID: 2, Keywords: []string{"ножиці кухонні"}},
			},
			productName: "Ножиці кухонні з нержавійки",
			wantID:      2,
			wantOk:      true,
		},
		"phrase match wins over better score": {
			categories: []models.Category{
				{ID: 1, Keywords: []string{"professional kitchen knife set"}},
				{ID: 2, Keywords: []string{"knife set"}},
			},
			productName: "Steel kitchen knife set professional",
			wantID:      2,
			wantOk:      true,
		},
		"highest score wins": {
			categories: []models.Category{
				{ID: 1, Keywords: []string{"kitchen steel tools"}},
				{ID: 2, Keywords: []string{"garden", "professional kitchen knife sets"}},
			},
			productName: "Steel kitchen knife sets professional",
			wantID:      2,
			wantOk:      true,
		},
		"tie keeps first category": {
			categories: []models.Category{
				{ID: 1, Keywords: []string{"steel kitchen pot"}},
				{ID: 2, Keywords: []string{"kitchen steel pan"}},
			},
			productName: "Steel kitchen knife",
			wantID:      1,
			wantOk:      true,
		},
		"score below minimum": {
			categories: []models.Category{
				{ID: 1, Keywords: []string{"kitchen tools"}},
			},
			productName: "Kitchen knife",
		},
		"coverage below half": {
			categories: []models.Category{
				{ID: 1, Keywords: []string{"garden chair hose reel nozzle"}},
			},
			productName: "Red garden chair",
		},
		"numbers and test words ignored": {
			categories: []models.Category{
				{ID: 1, Keywords: []string{"testing 123 phone"}},
			},
			productName: "test testing 123 456 Phone",
		},
		"blank keywords": {
			categories: []models.Category{
				{ID: 1, Keywords: []string{" ", ""}},
			},
			productName: "Anything",
		},
		"no categories": {
			productName: "Anything",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id, ok := matchKeywords(tt.categories, tt.productName)

			assert.Equal(t, tt.wantOk, ok, "should return correct match flag")
			assert.Equal(t, tt.wantID, id, "should return correct category id")
		})
	}
}
