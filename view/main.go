// Command view serves a VOC dataset split over HTTP for inspection:
// a plain-text listing, per-image annotation records as JSON, and
// images with their ground-truth boxes drawn on.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"

	http "github.com/valyala/fasthttp"

	"github.com/hiyyg/efficientdet-go/voc"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage of %s:\n", os.Args[0])
	fmt.Fprintln(os.Stderr, os.Args[0], "[flags] dir")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `dir -- Pascal VOC root directory (usually e.g. VOC2012)`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Endpoints:`)
	fmt.Fprintln(os.Stderr, `  /list            text listing of the retained images`)
	fmt.Fprintln(os.Stderr, `  /ann?id=<img>    annotation record as JSON`)
	fmt.Fprintln(os.Stderr, `  /img?id=<img>    image as JPEG, add box=true for overlays`)
}

func main() {
	var (
		addr          string
		set           string
		keepDifficult bool
		includeIgnore bool
		minImgSize    int
	)
	flag.StringVar(&addr, "addr", "0.0.0.0:8093", "Address to listen on")
	flag.StringVar(&set, "set", "trainval", "Image set to serve")
	flag.BoolVar(&keepDifficult, "keep-difficult", false, "Keep objects marked as difficult")
	flag.BoolVar(&includeIgnore, "include-ignore", false, "Report ignored boxes in records")
	flag.IntVar(&minImgSize, "min-size", 0, "Skip images smaller than this")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := voc.StandardConfig(flag.Arg(0), set)
	cfg.KeepDifficult = keepDifficult
	cfg.IncludeIgnore = includeIgnore
	cfg.MinImgSize = minImgSize

	log.Println("load annotations")
	idx, err := voc.Load(cfg)
	if err != nil {
		log.Fatalln("could not load annotations:", err)
	}
	log.Printf("%d images, %d without ground truth", idx.Len(), len(idx.Invalid()))

	handle := func(c *http.RequestCtx) {
		switch string(c.Path()) {
		case "/list":
			serveList(c, idx)
		case "/ann":
			serveAnn(c, idx)
		case "/img":
			serveImg(c, idx)
		default:
			c.SetStatusCode(http.StatusNotFound)
		}
	}

	log.Println("serving on", addr)
	if err := http.ListenAndServe(addr, handle); err != nil {
		log.Fatalln(err)
	}
}

func serveList(c *http.RequestCtx, idx *voc.Index) {
	c.SetContentType("text/plain; charset=utf-8")
	if err := idx.WriteSummary(c); err != nil {
		log.Printf("write listing: %v", err)
	}
}

// Looks up the image named by the id query argument.
func position(c *http.RequestCtx, idx *voc.Index) (int, bool) {
	imgID := string(c.URI().QueryArgs().Peek("id"))
	i, ok := idx.Position(imgID)
	if !ok {
		c.SetStatusCode(http.StatusNotFound)
		fmt.Fprintf(c, "no such image: %q\n", imgID)
	}
	return i, ok
}

func serveAnn(c *http.RequestCtx, idx *voc.Index) {
	i, ok := position(c, idx)
	if !ok {
		return
	}
	data, err := json.Marshal(idx.Annotations(i))
	if err != nil {
		c.SetStatusCode(http.StatusInternalServerError)
		log.Printf("encode record: %v", err)
		return
	}
	c.SetContentType("application/json")
	c.Write(data)
}

func serveImg(c *http.RequestCtx, idx *voc.Index) {
	i, ok := position(c, idx)
	if !ok {
		return
	}
	img, err := loadImage(idx.Image(i).FileName)
	if err != nil {
		c.SetStatusCode(http.StatusInternalServerError)
		log.Printf("load image: %v", err)
		return
	}
	if string(c.URI().QueryArgs().Peek("box")) == "true" {
		img = drawBoxes(img, idx.Annotations(i).BBox)
	}
	c.SetContentType("image/jpeg")
	if err := jpeg.Encode(c, img, nil); err != nil {
		log.Printf("encode image: %v", err)
	}
}

func loadImage(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := jpeg.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}
