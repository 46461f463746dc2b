// Package wordcloud renders accumulated word frequencies as a word cloud
// shaped by a silhouette mask.
package wordcloud

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/dtnitsch/wordstat/pkg/analytics"
	"github.com/go-fonts/liberation/liberationsansregular"
	"github.com/psykhi/wordclouds"
)

// ErrNoWords is returned when the mapping is empty.
var ErrNoWords = errors.New("no words for word cloud")

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	palette = []color.Color{
		color.RGBA{R: 31, G: 119, B: 180, A: 255},
		color.RGBA{R: 255, G: 127, B: 14, A: 255},
		color.RGBA{R: 44, G: 160, B: 44, A: 255},
		color.RGBA{R: 214, G: 39, B: 40, A: 255},
		color.RGBA{R: 148, G: 103, B: 189, A: 255},
		color.RGBA{R: 140, G: 86, B: 75, A: 255},
	}
)

// Options controls the rendered image.
type Options struct {
	// MaskFile is an image whose white pixels are kept free of words.
	// Empty means no mask.
	MaskFile    string
	FontFile    string
	Width       int
	Height      int
	FontMaxSize int
	FontMinSize int
}

func (o *Options) applyDefaults() {
	if o.Width <= 0 {
		o.Width = 1024
	}
	if o.Height <= 0 {
		o.Height = 1024
	}
	if o.FontMaxSize <= 0 {
		o.FontMaxSize = 200
	}
	if o.FontMinSize <= 0 {
		o.FontMinSize = 10
	}
}

type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	opts.applyDefaults()
	return &Renderer{opts: opts}
}

// Prepare returns the counts handed to the layout: a zero count becomes 1
// so the word still shows up at the smallest size. Other counts are kept.
func Prepare(freq *analytics.FrequencyMap) map[string]int {
	words := make(map[string]int, freq.Len())
	freq.Each(func(word string, count int) {
		if count == 0 {
			count = 1
		}
		words[word] = count
	})
	return words
}

// Render draws freq and writes a PNG to path, replacing any existing file.
func (r *Renderer) Render(freq *analytics.FrequencyMap, path string) error {
	if freq.Len() == 0 {
		return fmt.Errorf("word cloud %q: %w", path, ErrNoWords)
	}

	img, err := r.Draw(Prepare(freq))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write word cloud %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode word cloud %q: %w", path, err)
	}
	return f.Close()
}

// Draw lays out words and returns the image.
func (r *Renderer) Draw(words map[string]int) (image.Image, error) {
	fontFile, cleanup, err := r.fontFile()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	options := []wordclouds.Option{
		wordclouds.FontFile(fontFile),
		wordclouds.FontMaxSize(r.opts.FontMaxSize),
		wordclouds.FontMinSize(r.opts.FontMinSize),
		wordclouds.Colors(palette),
		wordclouds.BackgroundColor(white),
		wordclouds.Width(r.opts.Width),
		wordclouds.Height(r.opts.Height),
	}

	if r.opts.MaskFile != "" {
		if err := checkImage(r.opts.MaskFile); err != nil {
			return nil, err
		}
		boxes := wordclouds.Mask(r.opts.MaskFile, r.opts.Width, r.opts.Height, white)
		options = append(options, wordclouds.MaskBoxes(boxes))
	}

	return wordclouds.NewWordcloud(words, options...).Draw(), nil
}

// fontFile returns a TTF path for the layout. Without a configured font the
// bundled Liberation Sans is written to a temporary file.
func (r *Renderer) fontFile() (string, func(), error) {
	if r.opts.FontFile != "" {
		if _, err := os.Stat(r.opts.FontFile); err != nil {
			return "", nil, fmt.Errorf("font file %q: %w", r.opts.FontFile, err)
		}
		return r.opts.FontFile, func() {}, nil
	}

	f, err := os.CreateTemp("", "wordstat-font-*.ttf")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary font file: %w", err)
	}
	cleanup := func() { _ = os.Remove(f.Name()) }

	if _, err := f.Write(liberationsansregular.TTF); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to write temporary font file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to write temporary font file: %w", err)
	}
	return f.Name(), cleanup, nil
}

// checkImage makes sure the mask exists and decodes, since the layout
// library silently ignores a broken mask.
func checkImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open mask image %q: %w", path, err)
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("failed to decode mask image %q: %w", path, err)
	}
	return nil
}
