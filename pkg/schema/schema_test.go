package schema

import (
	"testing"

	"github.com/goecospold/ecospold"
)

var v1Tags = []string{
	"administrativeInformation", "allocation", "dataEntryBy",
	"dataGeneratorAndPublication", "dataset", "dataSetInformation",
	"ecoSpold", "exchange", "flowData", "geography", "metaInformation",
	"modellingAndValidation", "person", "processInformation",
	"referenceFunction", "representativeness", "source", "technology",
	"timePeriod", "validation",
}

var v2Tags = []string{
	"activity", "activityDataset", "activityDescription",
	"administrativeInformation", "allocationComment",
	"childActivityDataset", "classification", "comment", "dataEntryBy",
	"dataGeneratorAndPublication", "ecoSpold", "elementaryExchange",
	"fileAttributes", "flowData", "generalComment", "geography",
	"impactIndicator", "intermediateExchange", "macroEconomicScenario",
	"modellingAndValidation", "parameter", "property",
	"representativeness", "review", "technology", "timePeriod",
	"transferCoefficient", "uncertainty",
}

func TestForVersion(t *testing.T) {
	if c := ForVersion(ecospold.V1); c == nil || c.Version() != ecospold.V1 {
		t.Fatal("ForVersion(V1) did not return the V1 catalog")
	}
	if c := ForVersion(ecospold.V2); c == nil || c.Version() != ecospold.V2 {
		t.Fatal("ForVersion(V2) did not return the V2 catalog")
	}
	if c := ForVersion(ecospold.SchemaVersion("V3")); c != nil {
		t.Fatal("ForVersion returned a catalog for an unsupported version")
	}
}

func TestCatalogCompleteness(t *testing.T) {
	v1 := ForVersion(ecospold.V1)
	for _, tag := range v1Tags {
		if _, ok := v1.Lookup(tag); !ok {
			t.Errorf("V1 catalog missing %q", tag)
		}
	}
	if v1.Len() != len(v1Tags) {
		t.Errorf("V1 catalog has %d entries, want %d", v1.Len(), len(v1Tags))
	}

	v2 := ForVersion(ecospold.V2)
	for _, tag := range v2Tags {
		if _, ok := v2.Lookup(tag); !ok {
			t.Errorf("V2 catalog missing %q", tag)
		}
	}
	if v2.Len() != len(v2Tags) {
		t.Errorf("V2 catalog has %d entries, want %d", v2.Len(), len(v2Tags))
	}
}

func TestCatalogsDoNotCrossResolve(t *testing.T) {
	v1 := ForVersion(ecospold.V1)
	v2 := ForVersion(ecospold.V2)

	// V2-only tags must miss the V1 catalog, and vice versa: absence,
	// not misresolution.
	for _, tag := range []string{"intermediateExchange", "activity", "fileAttributes", "generalComment"} {
		if _, ok := v1.Lookup(tag); ok {
			t.Errorf("V1 catalog resolved V2 tag %q", tag)
		}
	}
	for _, tag := range []string{"exchange", "person", "source", "allocation"} {
		if _, ok := v2.Lookup(tag); ok {
			t.Errorf("V2 catalog resolved V1 tag %q", tag)
		}
	}
}

func TestCommentFamilySharesDescriptor(t *testing.T) {
	v2 := ForVersion(ecospold.V2)
	base, _ := v2.Lookup("comment")
	for _, tag := range []string{"generalComment", "allocationComment"} {
		d, ok := v2.Lookup(tag)
		if !ok || d != base {
			t.Errorf("%q does not share the comment descriptor", tag)
		}
	}

	ad, _ := v2.Lookup("activityDataset")
	cad, _ := v2.Lookup("childActivityDataset")
	if ad == nil || ad != cad {
		t.Error("activityDataset and childActivityDataset do not share a descriptor")
	}
}

func TestFieldDeclarations(t *testing.T) {
	tests := []struct {
		version ecospold.SchemaVersion
		tag     string
		field   string
		kind    Kind
		def     string
	}{
		{ecospold.V1, "referenceFunction", "amount", KindFloat, "1.0"},
		{ecospold.V1, "referenceFunction", "infrastructureIncluded", KindBool, "true"},
		{ecospold.V1, "referenceFunction", "name", KindString, ""},
		{ecospold.V1, "exchange", "meanValue", KindFloat, ""},
		{ecospold.V1, "exchange", "uncertaintyType", KindInt, "1"},
		{ecospold.V1, "dataset", "timestamp", KindTimestamp, ""},
		{ecospold.V1, "timePeriod", "startDate", KindDate, ""},
		{ecospold.V1, "allocation", "allocationMethod", KindInt, "-1"},
		{ecospold.V2, "technology", "technologyLevel", KindInt, "3"},
		{ecospold.V2, "timePeriod", "isDataValidForEntirePeriod", KindBool, "true"},
		{ecospold.V2, "intermediateExchange", "amount", KindFloat, ""},
		{ecospold.V2, "fileAttributes", "majorRelease", KindInt, "1"},
		{ecospold.V2, "review", "reviewDate", KindDate, ""},
	}

	for _, tt := range tests {
		d, ok := ForVersion(tt.version).Lookup(tt.tag)
		if !ok {
			t.Errorf("%s: tag %q not in catalog", tt.version, tt.tag)
			continue
		}
		f, ok := d.Field(tt.field)
		if !ok {
			t.Errorf("%s %s: field %q not declared", tt.version, tt.tag, tt.field)
			continue
		}
		if f.Kind != tt.kind {
			t.Errorf("%s %s.%s kind = %v, want %v", tt.version, tt.tag, tt.field, f.Kind, tt.kind)
		}
		if f.Default != tt.def {
			t.Errorf("%s %s.%s default = %q, want %q", tt.version, tt.tag, tt.field, f.Default, tt.def)
		}
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindString:    "string",
		KindFloat:     "float",
		KindInt:       "int",
		KindBool:      "bool",
		KindDate:      "date",
		KindTimestamp: "timestamp",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
