// Package file checks uploaded files against size and type constraints.
//
// Constraint checks work on the small Ref interface (size and MIME type), so
// they can be applied to multipart uploads through FromHeader or to any other
// file abstraction. FromHeader detects the MIME type from the file content
// rather than trusting the client-declared Content-Type.
//
//	ref, err := file.FromHeader(fh)
//	if err != nil {
//	    return err
//	}
//	pdf := file.Constraint{
//	    Required:     true,
//	    MaxBytes:     50 * file.MB,
//	    AllowedTypes: []string{"application/pdf"},
//	}
//	if err := pdf.Check(ref); err != nil {
//	    if errors.Is(err, file.ErrFileTooLarge) {
//	        // ...
//	    }
//	}
//
// A nil Ref means "no file". It fails only when the constraint is Required.
package file
