// Package forms holds the storefront's field rule sets: login, signup and
// listing upload, the file constraints for uploaded documents and cover
// images, and search-query sanitization.
//
// Every validator is a pure function. On success it returns the normalized
// record (trimmed strings, parsed numbers); on failure it returns a
// validator.ValidationErrors holding one message per invalid field, the first
// failing rule of that field's ordered chain. Fields are checked
// independently, so the error may name several fields at once.
//
//	creds, err := forms.ValidateLogin(forms.LoginInput{Email: email, Password: pw})
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    render(verrs.Map()) // field -> message
//	}
//
// Validate dispatches by rule-set name for callers that only know the form by
// name (live validation endpoints). An unknown name is a programming error
// and panics.
package forms
