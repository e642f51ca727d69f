package voc

import "path"

// The 20 object classes of the Pascal VOC challenge, in label order.
// Label IDs are 1-based; 0 is reserved for background.
var DefaultClasses = []string{
	"aeroplane", "bicycle", "bird", "boat", "bottle", "bus", "car",
	"cat", "chair", "cow", "diningtable", "dog", "horse", "motorbike",
	"person", "pottedplant", "sheep", "sofa", "train", "tvmonitor",
}

// Config describes one dataset split.
//
// ImgFilename and AnnFilename are format strings instantiated with
// the image identifier, e.g. "VOC2012/Annotations/%s.xml".
type Config struct {
	// Path to the split file, one image identifier per line.
	SplitFilename string
	ImgFilename   string
	AnnFilename   string

	// Store boxes as [y1 x1 y2 x2] instead of [x1 y1 x2 y2].
	BBoxYXYX bool
	// The split carries ground-truth labels.
	HasLabels bool
	// Keep objects marked as difficult.
	KeepDifficult bool
	// Reject images whose annotation contains no objects.
	// Only honored when HasLabels is set.
	IgnoreEmptyGT bool
	// Report the ignored boxes in each Record as well.
	IncludeIgnore bool
	// Skip images whose smaller side is below this many pixels.
	MinImgSize int

	// Ordered class names. Empty means DefaultClasses.
	Classes []string
}

// StandardConfig returns a Config for the usual VOC directory layout.
//
// The split file is <dir>/ImageSets/Main/<set>.txt, images live in
// <dir>/JPEGImages and annotations in <dir>/Annotations.
//
// The set can either be simply "train", "val" or "trainval",
// or it can be "<class>_<set>", for example "horse_val".
func StandardConfig(dir, set string) Config {
	return Config{
		SplitFilename: path.Join(dir, "ImageSets", "Main", set+".txt"),
		ImgFilename:   path.Join(dir, "JPEGImages", "%s.jpg"),
		AnnFilename:   path.Join(dir, "Annotations", "%s.xml"),
		HasLabels:     true,
	}
}
