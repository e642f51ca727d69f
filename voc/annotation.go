package voc

import (
	"encoding/xml"
	"errors"
	"os"
)

// ImageInfo describes one retained image.
type ImageInfo struct {
	ID       string
	FileName string
	Width    int
	Height   int
}

// A RawAnnotation is one object instance as read from the annotation
// file: label ID, [xmin ymin xmax ymax] in the 1-based inclusive VOC
// convention, and the difficult flag.
type RawAnnotation struct {
	Label     int
	BBox      [4]int
	Difficult bool
}

var (
	errNoSize   = errors.New("missing size element")
	errNoWidth  = errors.New("missing size/width")
	errNoHeight = errors.New("missing size/height")
)

// Loads the annotation of one image.
// Returns the image size and the object instances it contains.
func loadAnnotation(name, imgID string, catToLabel map[string]int) (width, height int, anns []RawAnnotation, err error) {
	fi, err := os.Open(name)
	if err != nil {
		return 0, 0, nil, &FormatError{ImgID: imgID, Path: name, Err: err}
	}
	defer fi.Close()

	// Parse from XML.
	var data struct {
		XMLName xml.Name `xml:"annotation"`
		Size    *struct {
			Width  *int `xml:"width"`
			Height *int `xml:"height"`
		} `xml:"size"`
		Objects []struct {
			Name      string `xml:"name"`
			Difficult *int   `xml:"difficult"`
			BndBox    struct {
				XMin int `xml:"xmin"`
				YMin int `xml:"ymin"`
				XMax int `xml:"xmax"`
				YMax int `xml:"ymax"`
			} `xml:"bndbox"`
		} `xml:"object"`
	}
	if err := xml.NewDecoder(fi).Decode(&data); err != nil {
		return 0, 0, nil, &FormatError{ImgID: imgID, Path: name, Err: err}
	}
	switch {
	case data.Size == nil:
		err = errNoSize
	case data.Size.Width == nil:
		err = errNoWidth
	case data.Size.Height == nil:
		err = errNoHeight
	}
	if err != nil {
		return 0, 0, nil, &FormatError{ImgID: imgID, Path: name, Err: err}
	}

	// Construct from XML objects.
	for _, obj := range data.Objects {
		label, ok := catToLabel[obj.Name]
		if !ok {
			return 0, 0, nil, &UnknownCategoryError{ImgID: imgID, Name: obj.Name}
		}
		box := obj.BndBox
		anns = append(anns, RawAnnotation{
			Label:     label,
			BBox:      [4]int{box.XMin, box.YMin, box.XMax, box.YMax},
			Difficult: obj.Difficult != nil && *obj.Difficult != 0,
		})
	}
	return *data.Size.Width, *data.Size.Height, anns, nil
}
