package service

import (
	"Prism/internal/model"
	"Prism/internal/pkg/source"
	"Prism/internal/pkg/table"
	"slices"
	"testing"
)

func primaryBundle(id model.DatasetID, files ...source.File) *source.Bundle {
	return &source.Bundle{Dataset: id, Provenance: model.ProvenancePrimary, Files: files}
}

func TestValidateMissingRequired(t *testing.T) {
	spec := DatasetSpecs[model.DatasetXDaily]
	tb := extract(t, "date,Likes,Replies\n2025-01-01,1,2\n2025-01-02,1,2\n", "Date")

	v := ValidateDataset(spec, primaryBundle(spec.ID, source.File{Name: "a.csv"}), []table.Table{tb})
	if !slices.Equal(v.MissingRequired, []string{"impressions"}) {
		t.Errorf("missing required = %v", v.MissingRequired)
	}
	if slices.Contains(v.MissingOptional, "impressions") {
		t.Errorf("required group leaked into optional: %v", v.MissingOptional)
	}
	if v.Status != model.StatusNeedsAttention || v.Rows != 2 || v.File != "a.csv" {
		t.Errorf("validation = %+v", v)
	}
}

func TestValidateStatuses(t *testing.T) {
	spec := DatasetSpecs[model.DatasetXVideo]

	full := extract(t, "Date,Views,Watch time (ms),Completion rate\n2025-01-01,1,2,0.1\n", "Date")
	if v := ValidateDataset(spec, primaryBundle(spec.ID), []table.Table{full}); v.Status != model.StatusOK {
		t.Errorf("full = %+v", v)
	}

	partial := extract(t, "Date,Plays\n2025-01-01,1\n", "Date")
	v := ValidateDataset(spec, primaryBundle(spec.ID), []table.Table{partial})
	if v.Status != model.StatusPartial || len(v.MissingOptional) != 2 || len(v.MissingRequired) != 0 {
		t.Errorf("partial = %+v", v)
	}

	v = ValidateDataset(spec, source.Absent(spec.ID), nil)
	if v.Status != model.StatusMissingFile || v.Rows != 0 {
		t.Errorf("absent = %+v", v)
	}
}

func TestValidateUnionAcrossFiles(t *testing.T) {
	spec := DatasetSpecs[model.DatasetLinkedInDaily]
	a := extract(t, "Date,Impressions (total)\n01/01/2025,1\n", "Date")
	b := extract(t, "Date,Clicks (total),Reactions (total),Comments (total),Reposts (total),Engagements,New followers\n01/02/2025,1,1,1,1,1,1\n", "Date")

	v := ValidateDataset(spec, primaryBundle(spec.ID), []table.Table{a, b, {}})
	if v.Status != model.StatusOK || v.Rows != 2 {
		t.Errorf("union = %+v", v)
	}
}
