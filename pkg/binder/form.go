package binder

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"github.com/dmitrymomot/studyshelf/pkg/file"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (8MB).
// Larger parts are spooled to temporary files.
const DefaultMaxMemory = 8 << 20 // 8 MB

var fileHeaderType = reflect.TypeFor[*multipart.FileHeader]()

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. maxMemory <= 0 selects DefaultMaxMemory.
//
// Struct tags:
//   - `form:"name"` binds to form field "name"
//   - `file:"name"` binds to uploaded file "name" (*multipart.FileHeader or []*multipart.FileHeader)
//   - `form:"-"` / `file:"-"` skip the field
//
// Uploaded filenames are sanitized. Callers own the parsed form and should
// call r.MultipartForm.RemoveAll when done.
//
//	type uploadRequest struct {
//		Title    string                `form:"title"`
//		Document *multipart.FileHeader `file:"pdf"`
//	}
func Form(maxMemory int64) func(r *http.Request, v any) error {
	if maxMemory <= 0 {
		maxMemory = DefaultMaxMemory
	}

	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return ErrBinderNotApplicable
		}

		mediaType, err := requestMediaType(r, "application/x-www-form-urlencoded or multipart/form-data")
		if err != nil {
			return err
		}

		var (
			values map[string][]string
			files  map[string][]*multipart.FileHeader
		)

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return wrapFormError(err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if err := r.ParseMultipartForm(maxMemory); err != nil {
				return wrapFormError(err)
			}
			values = r.MultipartForm.Value
			files = r.MultipartForm.File

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		if err := bindToStruct(v, "form", values, ErrFailedToParseForm); err != nil {
			return err
		}
		return bindFiles(v, files)
	}
}

func wrapFormError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
}

// bindFiles sets fields tagged with `file`. Fields without the tag are left alone.
func bindFiles(v any, files map[string][]*multipart.FileHeader) error {
	rv, err := structValue(v, ErrFailedToParseForm)
	if err != nil {
		return err
	}
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		tag := fieldType.Tag.Get("file")
		if tag == "" || tag == "-" || !field.CanSet() {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		headers := files[name]
		if len(headers) == 0 {
			continue
		}

		for _, fh := range headers {
			fh.Filename = file.SanitizeFilename(fh.Filename)
		}

		switch fieldType.Type {
		case fileHeaderType:
			field.Set(reflect.ValueOf(headers[0]))
		case reflect.SliceOf(fileHeaderType):
			field.Set(reflect.ValueOf(headers))
		default:
			return fmt.Errorf("%w: field %s: unsupported file field type %s", ErrFailedToParseForm, name, fieldType.Type)
		}
	}

	return nil
}
