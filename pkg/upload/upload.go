package upload

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Rule ties an allowed extension to the Content-Type prefix it must declare
// and the media kind it maps to.
type Rule struct {
	Mime string
	Kind string
}

// Policy is a per-resource upload configuration: destination directory,
// filename prefix, size ceiling and extension allow-list.
type Policy struct {
	Dir     string
	Prefix  string
	MaxSize int64
	Exts    map[string]Rule
}

// Saved describes a stored upload.
type Saved struct {
	Filename string
	Path     string
	URL      string
	Mime     string
	Size     int64
	Kind     string
}

const MB = 1 << 20

func imageRules() map[string]Rule {
	return map[string]Rule{
		".jpg":  {Mime: "image/", Kind: "image"},
		".jpeg": {Mime: "image/", Kind: "image"},
		".png":  {Mime: "image/", Kind: "image"},
		".gif":  {Mime: "image/", Kind: "image"},
		".webp": {Mime: "image/", Kind: "image"},
	}
}

func videoRules() map[string]Rule {
	return map[string]Rule{
		".mp4":  {Mime: "video/", Kind: "video"},
		".webm": {Mime: "video/", Kind: "video"},
		".mov":  {Mime: "video/", Kind: "video"},
	}
}

func audioRules() map[string]Rule {
	return map[string]Rule{
		".mp3": {Mime: "audio/", Kind: "audio"},
		".wav": {Mime: "audio/", Kind: "audio"},
		".ogg": {Mime: "audio/", Kind: "audio"},
	}
}

func documentRules() map[string]Rule {
	return map[string]Rule{
		".pdf":  {Mime: "application/pdf", Kind: "document"},
		".doc":  {Mime: "application/msword", Kind: "document"},
		".docx": {Mime: "application/vnd.openxmlformats", Kind: "document"},
		".txt":  {Mime: "text/plain", Kind: "document"},
	}
}

func merge(maps ...map[string]Rule) map[string]Rule {
	out := map[string]Rule{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// ImagePolicy covers menu, events, games and party packages: images only, 5MB.
func ImagePolicy(root, resource, prefix string) Policy {
	return Policy{
		Dir:     filepath.Join(root, resource),
		Prefix:  prefix,
		MaxSize: 5 * MB,
		Exts:    imageRules(),
	}
}

// GalleryPolicy accepts images and videos, 10MB.
func GalleryPolicy(root string) Policy {
	return Policy{
		Dir:     filepath.Join(root, "gallery"),
		Prefix:  "gallery",
		MaxSize: 10 * MB,
		Exts:    merge(imageRules(), videoRules()),
	}
}

// AssetPolicy accepts everything the registry tracks, 50MB.
func AssetPolicy(root string) Policy {
	return Policy{
		Dir:     filepath.Join(root, "assets"),
		Prefix:  "asset",
		MaxSize: 50 * MB,
		Exts:    merge(imageRules(), videoRules(), audioRules(), documentRules()),
	}
}

// Validate checks extension, declared mimetype and size against the policy.
// A .jpg arriving as text/plain is rejected here.
func (p Policy) Validate(fh *multipart.FileHeader) (Rule, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	rule, ok := p.Exts[ext]
	if !ok {
		return Rule{}, fmt.Errorf("file type %q not allowed", ext)
	}
	declared := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(declared, rule.Mime) {
		return Rule{}, fmt.Errorf("mime type %q does not match %s", declared, ext)
	}
	if fh.Size > p.MaxSize {
		return Rule{}, fmt.Errorf("file exceeds %dMB limit", p.MaxSize/MB)
	}
	return rule, nil
}

// Save writes the upload under the policy directory as
// <prefix>-<unix-ms>-<9 random digits><ext> and returns its descriptor.
func (p Policy) Save(c *gin.Context, fh *multipart.FileHeader) (*Saved, error) {
	rule, err := p.Validate(fh)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%s-%d-%s%s", p.Prefix, time.Now().UnixMilli(), randomDigits(9), ext)

	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return nil, err
	}
	path := filepath.Join(p.Dir, name)
	if err := c.SaveUploadedFile(fh, path); err != nil {
		return nil, err
	}

	return &Saved{
		Filename: name,
		Path:     path,
		URL:      "/" + filepath.ToSlash(path),
		Mime:     fh.Header.Get("Content-Type"),
		Size:     fh.Size,
		Kind:     rule.Kind,
	}, nil
}

// DetectKind infers the media kind from a filename, for files that arrive
// outside the upload pipeline (asset import).
func DetectKind(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if rule, ok := merge(imageRules(), videoRules(), audioRules(), documentRules())[ext]; ok {
		return rule.Kind
	}
	return "document"
}

func randomDigits(n int) string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	max := uint64(1)
	for i := 0; i < n; i++ {
		max *= 10
	}
	return fmt.Sprintf("%0*d", n, binary.BigEndian.Uint64(buf[:])%max)
}
