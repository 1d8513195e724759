package pressroom

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// allowedFile reports whether name has an extension from the image
// allow-list. Only the text after the last dot counts.
func allowedFile(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(name[i+1:])]
}

// SanitizeFilename reduces name to a safe flat filename: it is folded to
// ASCII, path separators and whitespace runs become underscores, anything
// outside [A-Za-z0-9_.-] is dropped and leading or trailing dots and
// underscores are trimmed. The result may be empty.
func SanitizeFilename(name string) string {
	ascii := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	folded, _, err := transform.String(ascii, name)
	if err != nil {
		return ""
	}
	folded = strings.NewReplacer("/", " ", `\`, " ").Replace(folded)
	folded = strings.Join(strings.Fields(folded), "_")
	folded = unsafeFilenameChars.ReplaceAllString(folded, "")
	return strings.Trim(folded, "._")
}

func (a *App) handleUploadForm(c echo.Context) error {
	files, err := listUploads(a.Config.UploadFolder)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Upload(a.site(c), files))
}

func (a *App) handleUpload(c echo.Context) error {
	fh, err := c.FormFile("file1")
	if err != nil || fh.Filename == "" {
		return redirectWithFlash(c, "/upload", "error", "No file selected.")
	}
	if !allowedFile(fh.Filename) {
		return redirectWithFlash(c, "/upload", "error", "Invalid file type.")
	}
	name := SanitizeFilename(fh.Filename)
	if name == "" {
		return redirectWithFlash(c, "/upload", "error", "Invalid file name.")
	}
	if err := saveUpload(fh, a.Config.UploadFolder, name); err != nil {
		return err
	}
	a.logger.Info("file uploaded", zap.String("filename", name), zap.Int64("size", fh.Size))
	return redirectWithFlash(c, "/dashboard", "success", "Uploaded successfully.")
}

// saveUpload writes the upload into dir under name, replacing any file that
// already has that name.
func saveUpload(fh *multipart.FileHeader, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create upload folder: %w", err)
	}
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return dst.Close()
}

// listUploads describes the regular files in dir. Pixel dimensions are filled
// in when the file decodes as an image. A missing dir lists nothing.
func listUploads(dir string) ([]UploadedImage, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read upload folder: %w", err)
	}

	files := make([]UploadedImage, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		img := UploadedImage{
			Filename: e.Name(),
			URL:      "/uploads/" + PathEscape(e.Name()),
			Size:     info.Size(),
		}
		img.Width, img.Height = imageSize(filepath.Join(dir, e.Name()))
		files = append(files, img)
	}
	return files, nil
}

func imageSize(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
