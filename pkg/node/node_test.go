package node

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"

	"github.com/goecospold/ecospold"
)

const v1Sample = `<?xml version="1.0" encoding="UTF-8"?>
<ecoSpold validationId="1" validationStatus="valid">
  <dataset number="1" timestamp="2009-01-01T10:00:00">
    <metaInformation>
      <processInformation>
        <referenceFunction name="compost plant, open" unit="unit" amount="2.5" infrastructureProcess="true"/>
        <geography location="CH"/>
        <timePeriod dataValidForEntirePeriod="true">
          <startDate>1999-01-01</startDate>
          <endDate>2000-12-31</endDate>
        </timePeriod>
      </processInformation>
    </metaInformation>
    <flowData>
      <exchange number="1" name="first" unit="unit" meanValue="1.0"/>
      <exchange number="2" name="second" unit="kWh" meanValue="0.02"/>
      <unknownElement custom="x"/>
    </flowData>
  </dataset>
</ecoSpold>`

func parseV1(t *testing.T, xml string) *Node {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("read sample: %v", err)
	}
	root := WrapDocument(doc, NewResolver(ecospold.V1))
	if root == nil {
		t.Fatal("WrapDocument returned nil")
	}
	return root
}

func referenceFunction(t *testing.T) *Node {
	t.Helper()
	root := parseV1(t, v1Sample)
	ref := root.First("dataset").
		First("metaInformation").
		First("processInformation").
		First("referenceFunction")
	if ref == nil {
		t.Fatal("referenceFunction not found")
	}
	return ref
}

func TestWrapResolvesCatalogTypes(t *testing.T) {
	root := parseV1(t, v1Sample)

	if root.IsGeneric() || root.DescriptorName() != "EcoSpold" {
		t.Errorf("root resolved to %q, want EcoSpold", root.DescriptorName())
	}

	ref := referenceFunction(t)
	if ref.DescriptorName() != "ReferenceFunction" {
		t.Errorf("referenceFunction resolved to %q", ref.DescriptorName())
	}

	// Tags absent from the catalog fall back to the generic node.
	unknown := root.First("dataset").First("flowData").First("unknownElement")
	if unknown == nil {
		t.Fatal("unknownElement not found")
	}
	if !unknown.IsGeneric() {
		t.Errorf("unknownElement resolved to %q, want generic", unknown.DescriptorName())
	}
	if got := unknown.Attr("custom"); got != "x" {
		t.Errorf("generic node raw access = %q, want x", got)
	}
}

func TestV1ResolverDoesNotSeeV2Tags(t *testing.T) {
	r := NewResolver(ecospold.V1)
	for _, tag := range []string{"intermediateExchange", "activity", "fileAttributes"} {
		if d := r.Resolve(tag); d != nil {
			t.Errorf("V1 resolver resolved V2 tag %q to %q", tag, d.Name)
		}
	}
	if d := r.Resolve("exchange"); d == nil {
		t.Error("V1 resolver missed its own exchange tag")
	}
}

func TestTypedGetters(t *testing.T) {
	root := parseV1(t, v1Sample)
	ds := root.First("dataset")

	if got := ds.Int("number"); got != 1 {
		t.Errorf("Int(number) = %d, want 1", got)
	}
	want := time.Date(2009, 1, 1, 10, 0, 0, 0, time.UTC)
	if got := ds.Timestamp("timestamp"); !got.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", got, want)
	}

	ref := referenceFunction(t)
	if got := ref.Float64("amount"); got != 2.5 {
		t.Errorf("Float64(amount) = %v, want 2.5", got)
	}
	if !ref.Bool("infrastructureProcess") {
		t.Error("Bool(infrastructureProcess) = false, want true")
	}
	if got := ref.Attr("name"); got != "compost plant, open" {
		t.Errorf("Attr(name) = %q", got)
	}

	// Date fields stored as child-element text.
	tp := root.First("dataset").First("metaInformation").
		First("processInformation").First("timePeriod")
	if got := tp.Date("startDate"); !got.Equal(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date(startDate) = %v", got)
	}
}

func TestSetThenGetRoundTrip(t *testing.T) {
	ref := referenceFunction(t)

	ref.SetFloat64("amount", 2.0)
	if got := ref.Float64("amount"); got != 2.0 {
		t.Errorf("set 2.0, get %v", got)
	}

	ref.SetInt("statisticalClassification", 12000)
	if got := ref.Int("statisticalClassification"); got != 12000 {
		t.Errorf("set 12000, get %v", got)
	}

	ref.SetBool("infrastructureIncluded", false)
	if got := ref.Bool("infrastructureIncluded"); got {
		t.Error("set false, get true")
	}
	if raw, _ := ref.Raw("infrastructureIncluded"); raw != "false" {
		t.Errorf("bool stored as %q, want lowercase false", raw)
	}

	ts := time.Date(2020, 6, 1, 8, 30, 0, 0, time.UTC)
	ref.SetTimestamp("timestamp", ts)
	if got := ref.Timestamp("timestamp"); !got.Equal(ts) {
		t.Errorf("set %v, get %v", ts, got)
	}
}

func TestSetAbsentElementBackedField(t *testing.T) {
	root := parseV1(t, v1Sample)
	ex := root.First("dataset").First("flowData").First("exchange")

	// outputGroup lives in a child element per the schema; creating it
	// through the typed setter must not produce an attribute.
	ex.SetInt("outputGroup", 2)
	if a := ex.Element().SelectAttr("outputGroup"); a != nil {
		t.Fatalf("SetInt created attribute outputGroup=%q, want child element", a.Value)
	}
	c := ex.Element().SelectElement("outputGroup")
	if c == nil {
		t.Fatal("SetInt did not create the outputGroup child element")
	}
	if c.Text() != "2" {
		t.Errorf("outputGroup text = %q, want 2", c.Text())
	}
	if got := ex.Int("outputGroup"); got != 2 {
		t.Errorf("Int(outputGroup) = %d, want 2", got)
	}

	// Attribute-backed fields still get attributes.
	ex.SetFloat64("minValue", 0.5)
	if ex.Element().SelectAttr("minValue") == nil {
		t.Error("SetFloat64 did not create the minValue attribute")
	}
}

func TestSetElementBackedFieldKeepsSequenceOrder(t *testing.T) {
	root := parseV1(t, `<ecoSpold><dataset><metaInformation><processInformation>
		<referenceFunction name="n" unit="u"/>
		<timePeriod><endDate>2000-12-31</endDate></timePeriod>
	</processInformation></metaInformation></dataset></ecoSpold>`)
	tp := root.First("dataset").First("metaInformation").
		First("processInformation").First("timePeriod")

	// startDate precedes endDate in the schema sequence, so the new cell
	// must be inserted before the existing endDate child.
	tp.SetDate("startDate", time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC))
	kids := tp.Element().ChildElements()
	if len(kids) != 2 {
		t.Fatalf("got %d timePeriod children, want 2", len(kids))
	}
	if kids[0].Tag != "startDate" || kids[1].Tag != "endDate" {
		t.Errorf("child order = %s, %s; want startDate, endDate", kids[0].Tag, kids[1].Tag)
	}
}

func TestSetExistingElementBackedFieldUpdatesInPlace(t *testing.T) {
	root := parseV1(t, v1Sample)
	tp := root.First("dataset").First("metaInformation").
		First("processInformation").First("timePeriod")

	tp.SetDate("startDate", time.Date(2001, 3, 15, 0, 0, 0, 0, time.UTC))
	if a := tp.Element().SelectAttr("startDate"); a != nil {
		t.Fatalf("set on element-backed field created attribute %q", a.Value)
	}
	if got := len(tp.Element().SelectElements("startDate")); got != 1 {
		t.Fatalf("got %d startDate children, want 1", got)
	}
	if got := tp.Element().SelectElement("startDate").Text(); got != "2001-03-15" {
		t.Errorf("startDate text = %q, want 2001-03-15", got)
	}
}

func TestInvalidAssignmentReadsAsDefault(t *testing.T) {
	ref := referenceFunction(t)

	// Assigning syntactically invalid text must not fail, and the next
	// read returns the field's schema default (1.0 for amount), not the
	// invalid string and not an error.
	ref.SetRaw("amount", "abc")
	if got := ref.Float64("amount"); got != 1.0 {
		t.Errorf("amount after invalid assignment = %v, want default 1.0", got)
	}

	// The raw text keeps what was stored; only the typed view falls back.
	if raw, ok := ref.Raw("amount"); !ok || raw != "abc" {
		t.Errorf("raw amount = %q (present %v), want abc", raw, ok)
	}

	// Fields without a declared default fall back to the zero value.
	ref.SetRaw("statisticalClassification", "not-a-number")
	if got := ref.Int("statisticalClassification"); got != 0 {
		t.Errorf("int fallback = %d, want 0", got)
	}
}

func TestAbsentFieldReadsAsDefault(t *testing.T) {
	ref := referenceFunction(t)

	// infrastructureIncluded is absent in the sample; its default is true.
	if !ref.Bool("infrastructureIncluded") {
		t.Error("absent bool with default true read as false")
	}
	// generalComment is absent with no default.
	if got := ref.Attr("generalComment"); got != "" {
		t.Errorf("absent string = %q, want empty", got)
	}
	// Unknown field on a typed node: zero value.
	if got := ref.Float64("noSuchField"); got != 0 {
		t.Errorf("undeclared field = %v, want 0", got)
	}
}

func TestStrictAccessors(t *testing.T) {
	ref := referenceFunction(t)

	if v, err := ref.Float64Strict("amount"); err != nil || v != 2.5 {
		t.Errorf("Float64Strict = %v, %v", v, err)
	}

	if _, err := ref.Float64Strict("generalComment"); err == nil {
		t.Error("Float64Strict on absent field did not error")
	}

	ref.SetRaw("amount", "abc")
	if _, err := ref.Float64Strict("amount"); err == nil {
		t.Error("Float64Strict on uncoercible text did not error")
	}
	// The strict read must not have touched the stored text.
	if raw, _ := ref.Raw("amount"); raw != "abc" {
		t.Errorf("strict read mutated raw text to %q", raw)
	}
}

func TestChildOrderPreserved(t *testing.T) {
	root := parseV1(t, v1Sample)
	flow := root.First("dataset").First("flowData")

	exchanges := flow.All("exchange")
	if len(exchanges) != 2 {
		t.Fatalf("got %d exchanges, want 2", len(exchanges))
	}
	if exchanges[0].Attr("name") != "first" || exchanges[1].Attr("name") != "second" {
		t.Errorf("exchange order: %q, %q", exchanges[0].Attr("name"), exchanges[1].Attr("name"))
	}

	kids := flow.Children()
	if len(kids) != 3 {
		t.Fatalf("got %d children, want 3", len(kids))
	}
	wantTags := []string{"exchange", "exchange", "unknownElement"}
	for i, k := range kids {
		if k.Tag() != wantTags[i] {
			t.Errorf("child %d = %q, want %q", i, k.Tag(), wantTags[i])
		}
	}
}

func TestSetMutatesOnlyTargetCell(t *testing.T) {
	root := parseV1(t, v1Sample)
	before := root.Snapshot()

	ref := root.First("dataset").First("metaInformation").
		First("processInformation").First("referenceFunction")
	ref.SetFloat64("amount", 9.0)

	after := root.Snapshot()
	diff := cmp.Diff(before, after)
	if diff == "" {
		t.Fatal("set changed nothing")
	}
	// Exactly one attribute differs.
	before.Children[0].Children[0].Children[0].Children[0].Attr["amount"] = "9"
	if d := cmp.Diff(before, after); d != "" {
		t.Errorf("set leaked beyond the amount cell: %s", d)
	}
}

func TestNilNodeIsSafe(t *testing.T) {
	var n *Node
	if n.First("x") != nil || n.All("x") != nil || n.Children() != nil {
		t.Error("navigation on nil node returned non-nil")
	}
	if n.Float64("a") != 0 || n.Attr("a") != "" || n.Tag() != "" {
		t.Error("getters on nil node returned non-zero")
	}
	if !n.IsGeneric() {
		t.Error("nil node is not generic")
	}
}

func TestLocalizedText(t *testing.T) {
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<ecoSpold><activityDataset><activityDescription><activity id="a" type="1" specialActivityType="0">
		<generalComment>
			<text xml:lang="en" index="1">run-of-river plant</text>
			<text xml:lang="de" index="2">Laufwasserkraftwerk</text>
		</generalComment>
	</activity></activityDescription></activityDataset></ecoSpold>`)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	root := WrapDocument(doc, NewResolver(ecospold.V2))
	comment := root.First("activityDataset").First("activityDescription").
		First("activity").First("generalComment")
	if comment == nil {
		t.Fatal("generalComment not found")
	}
	if comment.DescriptorName() != "Comment" {
		t.Errorf("generalComment resolved to %q, want Comment", comment.DescriptorName())
	}

	tests := []struct {
		lang string
		want string
	}{
		{"de", "Laufwasserkraftwerk"},
		{"en", "run-of-river plant"},
		{"en-US", "run-of-river plant"},
		{"de-CH", "Laufwasserkraftwerk"},
	}
	for _, tt := range tests {
		if got := comment.LocalizedText(tt.lang); got != tt.want {
			t.Errorf("LocalizedText(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}

	// No text children: empty result, no panic.
	empty := root.First("activityDataset")
	if got := empty.LocalizedText("en"); got != "" {
		t.Errorf("LocalizedText on non-comment = %q", got)
	}
}

func TestSnapshotIgnoresIndentation(t *testing.T) {
	compact := `<a x="1"><b>t</b><c/></a>`
	pretty := "<a x=\"1\">\n  <b>t</b>\n  <c/>\n</a>"

	read := func(s string) Snapshot {
		doc := etree.NewDocument()
		if err := doc.ReadFromString(s); err != nil {
			t.Fatalf("read: %v", err)
		}
		return snapshotElement(doc.Root())
	}

	if diff := cmp.Diff(read(compact), read(pretty)); diff != "" {
		t.Errorf("snapshots differ on formatting only: %s", diff)
	}
}
