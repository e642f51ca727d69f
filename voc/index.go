package voc

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// An Index is a random-access view of one dataset split: the retained
// image identifiers, their metadata and their raw object annotations,
// positionally aligned. It is built once by Load and is read-only
// afterwards, except for Merge.
type Index struct {
	yxyx          bool
	keepDifficult bool
	includeIgnore bool
	minImgSize    int

	classes    []string
	catToLabel map[string]int

	imgIDs        []string
	imgIDsInvalid []string
	imgInfos      []ImageInfo
	anns          [][]RawAnnotation
	idToIdx       map[string]int
}

// Load builds an Index from cfg in a single pass over the split file.
//
// Images smaller than cfg.MinImgSize are skipped. Images without any
// object are rejected when cfg.IgnoreEmptyGT is set and can be listed
// with Invalid. Any unreadable or malformed annotation aborts the
// whole load; a partially loaded split is never returned.
func Load(cfg Config) (*Index, error) {
	classes := cfg.Classes
	if len(classes) == 0 {
		classes = DefaultClasses
	}
	catToLabel := make(map[string]int, len(classes))
	for i, cat := range classes {
		catToLabel[cat] = i + 1
	}

	d := &Index{
		yxyx:          cfg.BBoxYXYX,
		keepDifficult: cfg.KeepDifficult,
		includeIgnore: cfg.IncludeIgnore,
		minImgSize:    cfg.MinImgSize,
		classes:       classes,
		catToLabel:    catToLabel,
		idToIdx:       make(map[string]int),
	}
	ignoreEmptyGT := cfg.HasLabels && cfg.IgnoreEmptyGT

	fi, err := os.Open(cfg.SplitFilename)
	if err != nil {
		return nil, err
	}
	defer fi.Close()

	scanner := bufio.NewScanner(fi)
	for scanner.Scan() {
		imgID := strings.TrimSpace(scanner.Text())
		annPath := fmt.Sprintf(cfg.AnnFilename, imgID)
		width, height, anns, err := loadAnnotation(annPath, imgID, catToLabel)
		if err != nil {
			return nil, err
		}
		if width < d.minImgSize || height < d.minImgSize {
			// Too small to train on. Dropped without trace.
			continue
		}
		if ignoreEmptyGT && len(anns) == 0 {
			d.imgIDsInvalid = append(d.imgIDsInvalid, imgID)
			continue
		}
		d.idToIdx[imgID] = len(d.imgIDs)
		d.imgIDs = append(d.imgIDs, imgID)
		d.imgInfos = append(d.imgInfos, ImageInfo{
			ID:       imgID,
			FileName: fmt.Sprintf(cfg.ImgFilename, imgID),
			Width:    width,
			Height:   height,
		})
		d.anns = append(d.anns, anns)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// Len returns the number of retained images.
func (d *Index) Len() int { return len(d.imgIDs) }

// Image returns the metadata of the image at position i.
func (d *Index) Image(i int) ImageInfo { return d.imgInfos[i] }

// Position returns the position of an image identifier.
func (d *Index) Position(imgID string) (int, bool) {
	i, ok := d.idToIdx[imgID]
	return i, ok
}

// Label returns the 1-based label ID of a class name.
func (d *Index) Label(cat string) (int, bool) {
	label, ok := d.catToLabel[cat]
	return label, ok
}

// NumCategories returns the size of the category table.
func (d *Index) NumCategories() int { return len(d.catToLabel) }

// Categories returns the class names in label order.
func (d *Index) Categories() []string {
	return append([]string(nil), d.classes...)
}

// Invalid returns the identifiers rejected for having no objects.
func (d *Index) Invalid() []string {
	return append([]string(nil), d.imgIDsInvalid...)
}

// Merge appends other's images to d, shifting other's positions by
// d's pre-merge length. It fails if the category tables differ in
// size, leaving both indexes unchanged. other is only read.
//
// Merge must not run concurrently with any other use of d.
func (d *Index) Merge(other *Index) error {
	if len(d.catToLabel) != len(other.catToLabel) {
		return &CategoryMismatchError{
			NumCats:      len(d.catToLabel),
			OtherNumCats: len(other.catToLabel),
		}
	}
	n := len(d.imgIDs)
	d.imgIDs = append(d.imgIDs, other.imgIDs...)
	d.imgInfos = append(d.imgInfos, other.imgInfos...)
	d.anns = append(d.anns, other.anns...)
	for imgID, i := range other.idToIdx {
		d.idToIdx[imgID] = i + n
	}
	return nil
}
