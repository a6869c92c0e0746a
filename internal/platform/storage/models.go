package storage

import (
	"fmt"
	"strings"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/lib/pq"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toAppFeedSource(source *pgmodels.FeedSource) *models.FeedSource {
	return &models.FeedSource{
		ID:             source.ID,
		Name:           source.Name,
		Company:        source.Company,
		XMLURL:         source.XMLURL,
		FrequencyHours: source.Frequency,
		LastUpdate:     source.LastUpdate,
		NextUpdate:     source.NextUpdate,
		IsActive:       source.IsActive,
		CreatedAt:      source.CreatedAt,
	}
}

// ToDBFeedSource converts models.FeedSource into postgres feed source model.
func ToDBFeedSource(source *models.FeedSource) *pgmodels.FeedSource {
	return &pgmodels.FeedSource{
		ID:         source.ID,
		Name:       source.Name,
		Company:    source.Company,
		XMLURL:     source.XMLURL,
		Frequency:  source.FrequencyHours,
		LastUpdate: source.LastUpdate,
		NextUpdate: source.NextUpdate,
		IsActive:   source.IsActive,
		CreatedAt:  source.CreatedAt,
	}
}

func toDBReport(report *models.Report) *pgmodels.FeedParsingReport {
	return &pgmodels.FeedParsingReport{
		ID:                     report.ID,
		FeedSourceID:           report.FeedSourceID,
		Status:                 string(report.Status),
		StartedAt:              report.StartedAt,
		FinishedAt:             report.FinishedAt,
		TotalProducts:          report.TotalProducts,
		ProductsAdded:          report.ProductsAdded,
		ProductsUpdated:        report.ProductsUpdated,
		ProductsFailed:         report.ProductsFailed,
		ProductsUnpublished:    report.ProductsUnpublished,
		ProductsArchived:       report.ProductsArchived,
		CategoriesCreated:      report.CategoriesCreated,
		AttributesCreated:      report.AttributesCreated,
		AttributeValuesCreated: report.AttributeValuesCreated,
		DownloadError:          report.DownloadError,
		ParsingError:           report.ParsingError,
	}
}

func toAppReport(report *pgmodels.FeedParsingReport) *models.Report {
	return &models.Report{
		ID:                     report.ID,
		FeedSourceID:           report.FeedSourceID,
		Status:                 models.ReportStatus(report.Status),
		StartedAt:              report.StartedAt,
		FinishedAt:             report.FinishedAt,
		TotalProducts:          report.TotalProducts,
		ProductsAdded:          report.ProductsAdded,
		ProductsUpdated:        report.ProductsUpdated,
		ProductsFailed:         report.ProductsFailed,
		ProductsUnpublished:    report.ProductsUnpublished,
		ProductsArchived:       report.ProductsArchived,
		CategoriesCreated:      report.CategoriesCreated,
		AttributesCreated:      report.AttributesCreated,
		AttributeValuesCreated: report.AttributeValuesCreated,
		DownloadError:          report.DownloadError,
		ParsingError:           report.ParsingError,
	}
}

func toDBReportItem(item *models.ReportItem) *pgmodels.FeedParsingReportItem {
	return &pgmodels.FeedParsingReportItem{
		ReportID:          item.ReportID,
		ProductExternalID: item.ProductExternalID,
		Success:           item.Success,
		ErrorMessage:      item.ErrorMessage,
	}
}

func toAppReportItem(item *pgmodels.FeedParsingReportItem) *models.ReportItem {
	return &models.ReportItem{
		ID:                item.ID,
		ReportID:          item.ReportID,
		ProductExternalID: item.ProductExternalID,
		Success:           item.Success,
		ErrorMessage:      item.ErrorMessage,
		CreatedAt:         item.CreatedAt,
	}
}

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product) *pgmodels.Product {
	return &pgmodels.Product{
		ID:            product.ID,
		FeedSourceID:  product.FeedSourceID,
		ExternalID:    product.ExternalID,
		Name:          product.Name,
		Vendor:        product.Vendor,
		Article:       product.Article,
		Description:   product.Description,
		Price:         product.Price,
		OldPrice:      product.OldPrice,
		PromoPrice:    product.PromoPrice,
		Currency:      product.Currency,
		StockQuantity: product.StockQuantity,
		Available:     product.Available,
		CategoryID:    product.CategoryID,
		URL:           product.URL,
		ViewsCount:    product.ViewsCount,
		Status:        string(product.Status),
		PublishedAt:   product.PublishedAt,
		IsNew:         product.IsNew,
		IsActive:      product.IsActive,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func toAppProduct(product *pgmodels.Product) *models.Product {
	return &models.Product{
		ID:            product.ID,
		FeedSourceID:  product.FeedSourceID,
		ExternalID:    product.ExternalID,
		Name:          product.Name,
		Vendor:        product.Vendor,
		Article:       product.Article,
		Description:   product.Description,
		Price:         product.Price,
		OldPrice:      product.OldPrice,
		PromoPrice:    product.PromoPrice,
		Currency:      product.Currency,
		StockQuantity: product.StockQuantity,
		Available:     product.Available,
		CategoryID:    product.CategoryID,
		URL:           product.URL,
		ViewsCount:    product.ViewsCount,
		Status:        models.ProductStatus(product.Status),
		PublishedAt:   product.PublishedAt,
		IsNew:         product.IsNew,
		IsActive:      product.IsActive,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// ToDBCategory converts models.Category into postgres category model.
func ToDBCategory(category *models.Category) *pgmodels.Category {
	return &pgmodels.Category{
		ID:        category.ID,
		Title:     category.Title,
		Keywords:  toDBKeywords(category.Keywords),
		IsActive:  category.IsActive,
		CreatedAt: category.CreatedAt,
	}
}

func toAppCategory(category *pgmodels.Category) (*models.Category, error) {
	keywords, err := toAppKeywords(category.Keywords)
	if err != nil {
		return nil, fmt.Errorf("can't decode keywords of category %d: %w", category.ID, err)
	}

	return &models.Category{
		ID:        category.ID,
		Title:     category.Title,
		Keywords:  keywords,
		IsActive:  category.IsActive,
		CreatedAt: category.CreatedAt,
	}, nil
}

// toDBKeywords encodes trimmed keyword phrases as text array literal.
func toDBKeywords(keywords []string) string {
	phrases := append(pq.StringArray{}, lo.Compact(lo.Map(keywords, func(k string, _ int) string {
		return strings.TrimSpace(k)
	}))...)

	// non-nil array is always encoded as string
	value, _ := phrases.Value()
	return value.(string)
}

func toAppKeywords(keywords string) ([]string, error) {
	var phrases pq.StringArray
	if err := phrases.Scan(keywords); err != nil {
		return nil, err
	}

	if len(phrases) == 0 {
		return nil, nil
	}

	return phrases, nil
}

func toDBAttribute(attribute *models.Attribute) *pgmodels.Attribute {
	return &pgmodels.Attribute{
		ID:        attribute.ID,
		Title:     attribute.Title,
		Label:     attribute.Label,
		ValueType: attribute.ValueType,
		SortOrder: attribute.SortOrder,
		IsActive:  attribute.IsActive,
		CreatedAt: attribute.CreatedAt,
	}
}

func toAppAttribute(attribute *pgmodels.Attribute) *models.Attribute {
	return &models.Attribute{
		ID:        attribute.ID,
		Title:     attribute.Title,
		Label:     attribute.Label,
		ValueType: attribute.ValueType,
		SortOrder: attribute.SortOrder,
		IsActive:  attribute.IsActive,
		CreatedAt: attribute.CreatedAt,
	}
}

func toDBAttributeValue(value *models.AttributeValue) *pgmodels.AttributeValue {
	dbValue := &pgmodels.AttributeValue{
		ID:          value.ID,
		AttributeID: value.AttributeID,
		Title:       value.Title,
		Label:       value.Label,
		SortOrder:   value.SortOrder,
		IsActive:    value.IsActive,
		CreatedAt:   value.CreatedAt,
	}

	switch value.Value.Kind() {
	case models.ValueKindBoolean:
		v, _ := value.Value.Boolean()
		dbValue.ValueBoolean = &v
	case models.ValueKindFloat:
		v, _ := value.Value.Float()
		dbValue.ValueFloat = &v
	case models.ValueKindInteger:
		v, _ := value.Value.Integer()
		dbValue.ValueInteger = &v
	default:
		v, _ := value.Value.Text()
		dbValue.ValueText = &v
	}

	return dbValue
}

func toAppAttributeValue(value *pgmodels.AttributeValue) *models.AttributeValue {
	return &models.AttributeValue{
		ID:          value.ID,
		AttributeID: value.AttributeID,
		Title:       value.Title,
		Label:       value.Label,
		Value:       toAppTypedValue(value),
		SortOrder:   value.SortOrder,
		IsActive:    value.IsActive,
		CreatedAt:   value.CreatedAt,
	}
}

func toAppTypedValue(value *pgmodels.AttributeValue) models.TypedValue {
	switch {
	case value.ValueBoolean != nil:
		return models.BooleanValue(*value.ValueBoolean)
	case value.ValueFloat != nil:
		return models.FloatValue(*value.ValueFloat)
	case value.ValueInteger != nil:
		return models.IntegerValue(*value.ValueInteger)
	default:
		return models.TextValue(lo.FromPtr(value.ValueText))
	}
}

func toDBProductImage(image *models.ProductImage) *pgmodels.ProductImage {
	return &pgmodels.ProductImage{
		ProductID: image.ProductID,
		Position:  image.Position,
		SourceURL: image.SourceURL,
		FileName:  image.FileName,
		Content:   image.Content,
	}
}

func toAppProductImage(image *pgmodels.ProductImage) *models.ProductImage {
	return &models.ProductImage{
		ID:        image.ID,
		ProductID: image.ProductID,
		Position:  image.Position,
		SourceURL: image.SourceURL,
		FileName:  image.FileName,
		Content:   image.Content,
		CreatedAt: image.CreatedAt,
	}
}
