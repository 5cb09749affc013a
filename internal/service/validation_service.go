package service

import (
	"Prism/internal/model"
	"Prism/internal/pkg/source"
	"Prism/internal/pkg/table"
	"strings"
)

// ValidateDataset 将数据集实际出现的列与必需 / 可选列组比对
func ValidateDataset(spec DatasetSpec, bundle *source.Bundle, tables []table.Table) model.CsvValidation {
	v := model.CsvValidation{
		Dataset:         spec.ID,
		Label:           spec.Label,
		File:            bundle.Describe(),
		Provenance:      bundle.Provenance,
		MissingRequired: missingGroups(spec.Required, tables),
		MissingOptional: missingGroups(spec.Optional, tables),
	}
	for _, t := range tables {
		v.Rows += t.Len()
	}
	v.Status = validationStatus(v)
	return v
}

func missingGroups(groups []ColumnGroup, tables []table.Table) []string {
	present := make(map[string]struct{})
	for _, t := range tables {
		for _, c := range t.Columns {
			present[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
		}
	}

	missing := make([]string, 0)
	for _, g := range groups {
		found := false
		for _, alias := range g.Aliases {
			if _, ok := present[strings.ToLower(alias)]; ok {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, g.Name)
		}
	}
	return missing
}

func validationStatus(v model.CsvValidation) model.ValidationStatus {
	switch {
	case v.Provenance == model.ProvenanceAbsent:
		return model.StatusMissingFile
	case len(v.MissingRequired) > 0:
		return model.StatusNeedsAttention
	case len(v.MissingOptional) > 0:
		return model.StatusPartial
	default:
		return model.StatusOK
	}
}
