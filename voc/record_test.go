package voc

import (
	"reflect"
	"testing"
)

// Builds an index with one image holding anns, bypassing the
// filesystem.
func testIndex(anns []RawAnnotation, mod func(*Index)) *Index {
	d := &Index{
		classes:    []string{"cat", "dog"},
		catToLabel: map[string]int{"cat": 1, "dog": 2},
		imgIDs:     []string{"a"},
		imgInfos:   []ImageInfo{{ID: "a", FileName: "a.jpg", Width: 640, Height: 480}},
		anns:       [][]RawAnnotation{anns},
		idToIdx:    map[string]int{"a": 0},
	}
	if mod != nil {
		mod(d)
	}
	return d
}

func TestAnnotationsShift(t *testing.T) {
	d := testIndex([]RawAnnotation{
		{Label: 1, BBox: [4]int{10, 20, 30, 40}},
	}, nil)

	rec := d.Annotations(0)
	wantBoxes := [][4]float32{{9, 19, 29, 39}}
	if !reflect.DeepEqual(rec.BBox, wantBoxes) {
		t.Fatalf("BBox = %v, want %v", rec.BBox, wantBoxes)
	}
	if !reflect.DeepEqual(rec.Cls, []int64{1}) {
		t.Fatalf("Cls = %v, want [1]", rec.Cls)
	}
	if rec.BBoxIgnore != nil || rec.ClsIgnore != nil {
		t.Fatalf("ignore group present without IncludeIgnore: %+v", rec)
	}
}

func TestAnnotationsYXYX(t *testing.T) {
	d := testIndex([]RawAnnotation{
		{Label: 2, BBox: [4]int{10, 20, 30, 40}},
	}, func(d *Index) { d.yxyx = true })

	rec := d.Annotations(0)
	wantBoxes := [][4]float32{{19, 9, 39, 29}}
	if !reflect.DeepEqual(rec.BBox, wantBoxes) {
		t.Fatalf("BBox = %v, want %v", rec.BBox, wantBoxes)
	}
}

func TestAnnotationsDegenerate(t *testing.T) {
	d := testIndex([]RawAnnotation{
		{Label: 1, BBox: [4]int{5, 5, 5, 9}},   // zero width
		{Label: 2, BBox: [4]int{3, 7, 9, 7}},   // zero height
		{Label: 1, BBox: [4]int{1, 1, 10, 10}}, // fine
	}, func(d *Index) { d.includeIgnore = true })

	rec := d.Annotations(0)
	if !reflect.DeepEqual(rec.BBox, [][4]float32{{0, 0, 9, 9}}) {
		t.Fatalf("BBox = %v", rec.BBox)
	}
	wantIgnore := [][4]float32{{4, 4, 4, 8}, {2, 6, 8, 6}}
	if !reflect.DeepEqual(rec.BBoxIgnore, wantIgnore) {
		t.Fatalf("BBoxIgnore = %v, want %v", rec.BBoxIgnore, wantIgnore)
	}
	if !reflect.DeepEqual(rec.ClsIgnore, []int64{1, 2}) {
		t.Fatalf("ClsIgnore = %v", rec.ClsIgnore)
	}
	// No degenerate box in the usable group, checked against the
	// pre-shift coordinates.
	for _, b := range rec.BBox {
		if b[2]-b[0] < 1 || b[3]-b[1] < 1 {
			t.Fatalf("degenerate usable box %v", b)
		}
	}
}

func TestAnnotationsDifficult(t *testing.T) {
	anns := []RawAnnotation{
		{Label: 1, BBox: [4]int{10, 10, 20, 20}, Difficult: true},
		{Label: 2, BBox: [4]int{30, 30, 40, 40}},
	}

	d := testIndex(anns, nil)
	rec := d.Annotations(0)
	if len(rec.BBox) != 1 || rec.Cls[0] != 2 {
		t.Fatalf("difficult not filtered: %+v", rec)
	}

	d = testIndex(anns, func(d *Index) { d.keepDifficult = true })
	rec = d.Annotations(0)
	if len(rec.BBox) != 2 {
		t.Fatalf("difficult not kept: %+v", rec)
	}
}

func TestAnnotationsEmptyGroupsNotNil(t *testing.T) {
	d := testIndex(nil, func(d *Index) { d.includeIgnore = true })

	rec := d.Annotations(0)
	if rec.BBox == nil || rec.Cls == nil || rec.BBoxIgnore == nil || rec.ClsIgnore == nil {
		t.Fatalf("empty groups must be non-nil: %+v", rec)
	}
	if len(rec.BBox) != 0 || len(rec.Cls) != 0 || len(rec.BBoxIgnore) != 0 || len(rec.ClsIgnore) != 0 {
		t.Fatalf("groups not empty: %+v", rec)
	}
}

func TestAnnotationsIdempotent(t *testing.T) {
	d := testIndex([]RawAnnotation{
		{Label: 1, BBox: [4]int{10, 20, 30, 40}},
		{Label: 2, BBox: [4]int{5, 5, 5, 5}, Difficult: true},
	}, func(d *Index) { d.includeIgnore = true })

	first := d.Annotations(0)
	second := d.Annotations(0)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Annotations not idempotent:\n%+v\n%+v", first, second)
	}
}
