package voc

// A Record holds the normalized annotations of one image: the usable
// boxes with their labels and, when requested, the ignored ones.
// Boxes are zero-based [x1 y1 x2 y2] float32, or [y1 x1 y2 x2] for an
// index built with BBoxYXYX.
type Record struct {
	BBox [][4]float32 `json:"bbox"`
	Cls  []int64      `json:"cls"`

	// Only populated for an index built with IncludeIgnore.
	BBoxIgnore [][4]float32 `json:"bbox_ignore,omitempty"`
	ClsIgnore  []int64      `json:"cls_ignore,omitempty"`
}

// Annotations normalizes the raw annotations of the image at
// position i.
//
// Degenerate boxes (zero extent on either axis in the 1-based
// inclusive convention) are ignored, as are difficult objects unless
// the index keeps them. Materialized coordinates are shifted down by
// one to a zero-based convention. Empty groups come out as empty,
// never nil.
func (d *Index) Annotations(i int) Record {
	var usable, ignored []RawAnnotation
	for _, ann := range d.anns[i] {
		degenerate := ann.BBox[2]-ann.BBox[0] < 1 || ann.BBox[3]-ann.BBox[1] < 1
		if degenerate || (ann.Difficult && !d.keepDifficult) {
			ignored = append(ignored, ann)
		} else {
			usable = append(usable, ann)
		}
	}

	var rec Record
	rec.BBox, rec.Cls = d.materialize(usable)
	if d.includeIgnore {
		rec.BBoxIgnore, rec.ClsIgnore = d.materialize(ignored)
	}
	return rec
}

// Converts raw annotations to the output arrays, applying the
// configured coordinate order and the minus-one shift.
func (d *Index) materialize(anns []RawAnnotation) ([][4]float32, []int64) {
	boxes := make([][4]float32, len(anns))
	labels := make([]int64, len(anns))
	for i, ann := range anns {
		x1, y1 := float32(ann.BBox[0]-1), float32(ann.BBox[1]-1)
		x2, y2 := float32(ann.BBox[2]-1), float32(ann.BBox[3]-1)
		if d.yxyx {
			boxes[i] = [4]float32{y1, x1, y2, x2}
		} else {
			boxes[i] = [4]float32{x1, y1, x2, y2}
		}
		labels[i] = int64(ann.Label)
	}
	return boxes, labels
}
