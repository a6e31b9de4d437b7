package outline

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestBuild_EmptyInputFails(t *testing.T) {
	if _, err := Build(nil, ""); !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestBuild_NumberedSectionOnPageOne(t *testing.T) {
	pages := []PageText{{Text: "Sample Document Title\n1. Introduction\nbody text here", Page: 1}}
	o, err := Build(pages, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Headings) != 1 {
		t.Fatalf("expected 1 heading, got %d: %+v", len(o.Headings), o.Headings)
	}
	h := o.Headings[0]
	if h.Level != H1 || h.Text != "1. Introduction" || h.Page != 1 {
		t.Errorf("got %+v, want {H1 1. Introduction 1}", h)
	}
}

func TestBuild_ShortAllCapsOnPageTwo(t *testing.T) {
	pages := []PageText{
		{Text: "Sample Document Title", Page: 1},
		{Text: "BACKGROUND\nprose follows", Page: 2},
	}
	o, err := Build(pages, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Headings) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(o.Headings))
	}
	h := o.Headings[0]
	if h.Level != H2 || h.Text != "BACKGROUND" || h.Page != 2 {
		t.Errorf("got %+v, want {H2 BACKGROUND 2}", h)
	}
}

func TestBuild_TitleCaseHeading(t *testing.T) {
	pages := []PageText{
		{Text: "Sample Document Title", Page: 1},
		{Text: "Experimental Setup", Page: 3},
	}
	o, err := Build(pages, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Headings) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(o.Headings))
	}
	h := o.Headings[0]
	if h.Level != H2 || h.Text != "Experimental Setup" || h.Page != 3 {
		t.Errorf("got %+v, want {H2 Experimental Setup 3}", h)
	}
}

func TestBuild_ContentTitleSuppressedFromHeadings(t *testing.T) {
	title := "A Study of Heuristic Outline Extraction"
	pages := []PageText{
		{Text: title + "\n1. Introduction", Page: 1},
		// The identical line appears again later in the document.
		{Text: title + "\n2. Related Work", Page: 4},
	}
	o, err := Build(pages, "")
	if err != nil {
		t.Fatal(err)
	}
	if o.Title != title {
		t.Fatalf("expected title %q, got %q", title, o.Title)
	}
	for _, h := range o.Headings {
		if h.Text == title {
			t.Errorf("title line leaked into headings on page %d", h.Page)
		}
	}
	if len(o.Headings) != 2 {
		t.Errorf("expected 2 headings, got %d: %+v", len(o.Headings), o.Headings)
	}
}

func TestBuild_MetadataTitleSuppressesMatchingLine(t *testing.T) {
	pages := []PageText{{Text: "Annual Report 2024\n1. Overview", Page: 1}}
	o, err := Build(pages, "Annual Report 2024")
	if err != nil {
		t.Fatal(err)
	}
	if o.Title != "Annual Report 2024" {
		t.Fatalf("expected metadata title, got %q", o.Title)
	}
	if len(o.Headings) != 1 || o.Headings[0].Text != "1. Overview" {
		t.Errorf("expected only '1. Overview', got %+v", o.Headings)
	}
}

func TestBuild_NoiseNeverReachesOutput(t *testing.T) {
	pages := []PageText{{Text: "Sample Document Title\nPage 12\n1. Introduction", Page: 1}}
	o, err := Build(pages, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range o.Headings {
		if h.Text == "Page 12" {
			t.Error("noise line appeared in output")
		}
	}
}

func TestBuild_ReadingOrderPreserved(t *testing.T) {
	pages := []PageText{
		{Text: "Doc Title Line\n1. Introduction\n1.1 Motivation", Page: 1},
		{Text: "2. Methods\n2.1 Apparatus", Page: 2},
	}
	o, err := Build(pages, "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1. Introduction", "1.1 Motivation", "2. Methods", "2.1 Apparatus"}
	if len(o.Headings) != len(want) {
		t.Fatalf("expected %d headings, got %d: %+v", len(want), len(o.Headings), o.Headings)
	}
	for i, text := range want {
		if o.Headings[i].Text != text {
			t.Errorf("heading %d: expected %q, got %q", i, text, o.Headings[i].Text)
		}
	}
	if o.Headings[2].Page != 2 {
		t.Errorf("expected '2. Methods' on page 2, got %d", o.Headings[2].Page)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	pages := []PageText{
		{Text: "Sample Document Title\n1. Introduction\nBACKGROUND MATERIAL AND SCOPE", Page: 1},
		{Text: "2.1 Methodology\nsome prose", Page: 2},
	}

	first, err := Build(pages, "Meta Title")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Build(pages, "Meta Title")
	if err != nil {
		t.Fatal(err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Errorf("expected byte-identical output, got %s vs %s", a, b)
	}
}

func TestBuild_EmptyOutlineSerializesAsArray(t *testing.T) {
	// Every line fails classification; the outline list must still be [].
	pages := []PageText{{Text: "only lowercase prose that fails every heading pattern on offer", Page: 1}}
	o, err := Build(pages, "Some Meta Title")
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"outline":[]`)) {
		t.Errorf("expected empty array serialization, got %s", data)
	}
}

func TestBuild_JSONFieldNames(t *testing.T) {
	pages := []PageText{{Text: "Sample Document Title\n1. Introduction", Page: 1}}
	o, err := Build(pages, "")
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"title"`, `"outline"`, `"level"`, `"text"`, `"page"`, `"H1"`} {
		if !bytes.Contains(data, []byte(field)) {
			t.Errorf("expected %s in serialized outline: %s", field, data)
		}
	}
}
