// Command sample crops the usable ground-truth windows of a VOC
// dataset split out of its images and writes them as PNG files of a
// common size, plus a list file naming them.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"math"
	"os"
	"path"

	"github.com/nfnt/resize"

	"github.com/hiyyg/efficientdet-go/voc"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage of %s:\n", os.Args[0])
	fmt.Fprintln(os.Stderr, os.Args[0], "[flags] dir set")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `dir -- Pascal VOC root directory (usually e.g. VOC2012)`)
	fmt.Fprintln(os.Stderr, `set -- Image set, e.g. "train", "val", "horse_val"`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Makes a directory ./<set>/ containing images.`)
	fmt.Fprintln(os.Stderr, `Creates a file ./<set>.txt with a list of these images.`)
}

func main() {
	var (
		numPix        int
		keepDifficult bool
		minImgSize    int
	)
	flag.IntVar(&numPix, "pixels", 100*100, "Rough number of pixels in window")
	flag.BoolVar(&keepDifficult, "keep-difficult", false, "Keep objects marked as difficult")
	flag.IntVar(&minImgSize, "min-size", 0, "Skip images smaller than this")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	dir, set := flag.Arg(0), flag.Arg(1)

	cfg := voc.StandardConfig(dir, set)
	cfg.KeepDifficult = keepDifficult
	cfg.IgnoreEmptyGT = true
	cfg.MinImgSize = minImgSize

	log.Println("load annotations")
	idx, err := voc.Load(cfg)
	if err != nil {
		log.Fatalln("could not load annotations:", err)
	}
	log.Printf("%d images, %d without ground truth", idx.Len(), len(idx.Invalid()))

	// Collect the usable windows and their aspect ratios.
	type window struct {
		img  int
		rect image.Rectangle
	}
	var wins []window
	var aspects []float64
	for i := 0; i < idx.Len(); i++ {
		for _, b := range idx.Annotations(i).BBox {
			// Boxes are zero-based inclusive, Rectangle excludes
			// the upper bound.
			r := image.Rect(int(b[0]), int(b[1]), int(b[2])+1, int(b[3])+1)
			wins = append(wins, window{i, r})
			aspects = append(aspects, float64(r.Dx())/float64(r.Dy()))
		}
	}
	if len(wins) == 0 {
		log.Fatalln("no usable windows in set")
	}

	// Get optimal aspect ratio.
	aspect := OptimalAspect(aspects)
	log.Printf("optimal aspect ratio: %g", aspect)

	// Compute reference width and height.
	// w h = A, w = a h, A = h^2 a, h = sqrt(A / a)
	// w^2 / a = A, w = sqrt(A * a)
	width := round(math.Sqrt(float64(numPix) * aspect))
	height := round(math.Sqrt(float64(numPix) / aspect))
	log.Printf("base size: %dx%d", width, height)

	// Create empty directory to write images to.
	if err := os.RemoveAll(set); err != nil {
		log.Fatalln("could not clear image dir:", err)
	}
	if err := os.Mkdir(set, 0755); err != nil {
		log.Fatalln("could not create image dir:", err)
	}

	log.Println("sample and save images")
	var (
		files []string
		cur   = -1
		sub   subImager
		n     int
	)
	// Windows arrive in image order, so each image loads once.
	for _, win := range wins {
		if win.img != cur {
			cur, n = win.img, 0
			img, err := loadImage(idx.Image(win.img).FileName)
			if err != nil {
				log.Fatalln("could not load image:", err)
			}
			var ok bool
			if sub, ok = img.(subImager); !ok {
				log.Fatalf("could not call SubImage(): %T", img)
			}
		}
		subImg := sub.SubImage(win.rect)
		subImg = resize.Resize(uint(width), uint(height), subImg, resize.Bilinear)
		file := fmt.Sprintf("%s_%d.png", idx.Image(win.img).ID, n)
		n++
		if err := saveImage(subImg, path.Join(set, file)); err != nil {
			log.Println("could not save image:", err)
			continue
		}
		files = append(files, file)
	}

	// Save list of image files.
	if err := saveLines(files, set+".txt"); err != nil {
		log.Fatalln("could not save list of images:", err)
	}
}

type subImager interface {
	SubImage(image.Rectangle) image.Image
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func loadImage(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func saveImage(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}

func saveLines(lines []string, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	defer buf.Flush()

	for _, line := range lines {
		if _, err := fmt.Fprintln(buf, line); err != nil {
			return err
		}
	}
	return nil
}
