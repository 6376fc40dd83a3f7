package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gatekit/gatekit/pkg/secerr"
)

// maxPathLength caps canonical directory and file name shapes.
const maxPathLength = 255

// validDirectoryPath is the traversal defense. The accepted form is not
// merely "a path that validates": after resolving symlinks and relative
// segments, the canonical absolute path must be byte-identical to the raw
// input. A path reaching a valid location through an alias or embedded ".."
// segments is rejected even though its target exists.
func (v *Validator) validDirectoryPath(context, input string, allowEmpty bool) (string, error) {
	if strings.TrimSpace(input) == "" {
		if allowEmpty {
			return "", nil
		}
		return "", secerr.NewValidation(context,
			"input directory path required",
			fmt.Sprintf("input directory path required: context=%s", context))
	}

	if _, err := os.Stat(input); err != nil {
		return "", secerr.NewValidation(context,
			"invalid directory name",
			fmt.Sprintf("directory does not exist: context=%s, input=%q: %v", context, input, err),
		).WithCause(err)
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return "", secerr.NewValidation(context,
			"invalid directory name",
			fmt.Sprintf("cannot resolve absolute path: context=%s, input=%q: %v", context, input, err),
		).WithCause(err)
	}
	canonicalPath, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", secerr.NewValidation(context,
			"invalid directory name",
			fmt.Sprintf("cannot canonicalize path: context=%s, input=%q: %v", context, input, err),
		).WithCause(err)
	}

	canonical, err := v.fileInput(context, canonicalPath, "DirectoryName", maxPathLength, false)
	if err != nil {
		return "", err
	}

	if canonical != input {
		return "", secerr.NewValidation(context,
			"invalid directory name",
			fmt.Sprintf("directory name does not match its canonical path: context=%s, input=%q, canonical=%q", context, input, canonical))
	}
	return canonical, nil
}

// IsValidDirectoryPath reports whether input is an existing directory path
// whose canonical form equals the input exactly.
func (v *Validator) IsValidDirectoryPath(context, input string, allowEmpty bool) bool {
	return ok(func() (string, error) { return v.validDirectoryPath(context, input, allowEmpty) })
}

// GetValidDirectoryPath returns the canonical directory path. The input must
// already be in canonical form: on systems where /etc is a symlink to
// /private/etc, pass /private/etc; the alias is rejected.
func (v *Validator) GetValidDirectoryPath(context, input string, allowEmpty bool) (string, error) {
	out, err := v.validDirectoryPath(context, input, allowEmpty)
	if err != nil {
		v.logFailure(err)
	}
	return out, err
}

// CollectValidDirectoryPath is the accumulating form of
// GetValidDirectoryPath.
func (v *Validator) CollectValidDirectoryPath(errs *secerr.ErrorList, context, input string, allowEmpty bool) (string, error) {
	return collect(errs, context, input, func() (string, error) {
		return v.GetValidDirectoryPath(context, input, allowEmpty)
	})
}

// validFileName accepts a bare filename: its canonical base component must
// equal the raw input (so "../../etc/passwd" fails however it is spelled),
// the raw name must match the filename shape whitelist, and it must carry an
// allowed extension. A nil exts falls back to the configured extension list.
func (v *Validator) validFileName(context, input string, exts []string, allowEmpty bool) (string, error) {
	if strings.TrimSpace(input) == "" {
		if allowEmpty {
			return "", nil
		}
		return "", secerr.NewValidation(context,
			"input file name required",
			fmt.Sprintf("input file name required: context=%s", context))
	}

	canonical := filepath.Base(filepath.Clean(input))

	if _, err := v.fileInput(context, input, "FileName", maxPathLength, true); err != nil {
		return "", err
	}

	if input != canonical {
		return "", secerr.NewValidation(context,
			"invalid file name",
			fmt.Sprintf("file name does not match its canonical form: context=%s, input=%q, canonical=%q", context, input, canonical))
	}

	if exts == nil {
		exts = v.sec.AllowedExtensions
	}
	lower := strings.ToLower(input)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return canonical, nil
		}
	}
	return "", secerr.NewValidation(context,
		fmt.Sprintf("invalid extension, allowed: %s", strings.Join(exts, " ")),
		fmt.Sprintf("file name extension not in allowed set %v: context=%s, input=%q", exts, context, input))
}

// IsValidFileName reports whether input is a safe bare filename with an
// allowed extension.
func (v *Validator) IsValidFileName(context, input string, exts []string, allowEmpty bool) bool {
	return ok(func() (string, error) { return v.validFileName(context, input, exts, allowEmpty) })
}

// GetValidFileName returns the canonical filename component.
func (v *Validator) GetValidFileName(context, input string, exts []string, allowEmpty bool) (string, error) {
	out, err := v.validFileName(context, input, exts, allowEmpty)
	if err != nil {
		v.logFailure(err)
	}
	return out, err
}

// CollectValidFileName is the accumulating form of GetValidFileName.
func (v *Validator) CollectValidFileName(errs *secerr.ErrorList, context, input string, exts []string, allowEmpty bool) (string, error) {
	return collect(errs, context, input, func() (string, error) {
		return v.GetValidFileName(context, input, exts, allowEmpty)
	})
}

// validFileContent enforces both ceilings. The global configured limit is
// authoritative: it rejects oversized content even when the caller passed a
// larger maxBytes.
func (v *Validator) validFileContent(context string, input []byte, maxBytes int64, allowEmpty bool) ([]byte, error) {
	if len(input) == 0 {
		if allowEmpty {
			return nil, nil
		}
		return nil, secerr.NewValidation(context,
			"input required",
			fmt.Sprintf("file content required: context=%s", context))
	}

	if int64(len(input)) > v.sec.MaxUploadBytes {
		return nil, secerr.NewValidation(context,
			fmt.Sprintf("file content cannot exceed %d bytes", v.sec.MaxUploadBytes),
			fmt.Sprintf("file content exceeds the configured upload ceiling: context=%s, size=%d, ceiling=%d", context, len(input), v.sec.MaxUploadBytes))
	}
	if int64(len(input)) > maxBytes {
		return nil, secerr.NewValidation(context,
			fmt.Sprintf("file content cannot exceed %d bytes", maxBytes),
			fmt.Sprintf("file content exceeds the caller maximum: context=%s, size=%d, max=%d", context, len(input), maxBytes))
	}
	return input, nil
}

// IsValidFileContent reports whether content fits both the global and the
// caller-supplied size limits.
func (v *Validator) IsValidFileContent(context string, input []byte, maxBytes int64, allowEmpty bool) bool {
	return ok(func() ([]byte, error) { return v.validFileContent(context, input, maxBytes, allowEmpty) })
}

// GetValidFileContent returns the content if it fits both size limits.
func (v *Validator) GetValidFileContent(context string, input []byte, maxBytes int64, allowEmpty bool) ([]byte, error) {
	out, err := v.validFileContent(context, input, maxBytes, allowEmpty)
	if err != nil {
		v.logFailure(err)
	}
	return out, err
}

// CollectValidFileContent is the accumulating form of GetValidFileContent.
func (v *Validator) CollectValidFileContent(errs *secerr.ErrorList, context string, input []byte, maxBytes int64, allowEmpty bool) ([]byte, error) {
	return collect(errs, context, input, func() ([]byte, error) {
		return v.GetValidFileContent(context, input, maxBytes, allowEmpty)
	})
}

// IsValidFileUpload reports whether the name, path, and content checks all
// pass.
func (v *Validator) IsValidFileUpload(context, dirPath, fileName string, content []byte, maxBytes int64, allowEmpty bool) bool {
	return v.IsValidFileName(context, fileName, nil, allowEmpty) &&
		v.IsValidDirectoryPath(context, dirPath, allowEmpty) &&
		v.IsValidFileContent(context, content, maxBytes, allowEmpty)
}

// AssertValidFileUpload validates name, then path, then content, stopping at
// the first failure.
func (v *Validator) AssertValidFileUpload(context, dirPath, fileName string, content []byte, maxBytes int64, allowEmpty bool) error {
	if _, err := v.GetValidFileName(context, fileName, nil, allowEmpty); err != nil {
		return err
	}
	if _, err := v.GetValidDirectoryPath(context, dirPath, allowEmpty); err != nil {
		return err
	}
	if _, err := v.GetValidFileContent(context, content, maxBytes, allowEmpty); err != nil {
		return err
	}
	return nil
}

// CollectValidFileUpload runs all three checks independently and appends
// every failure it finds, rather than stopping at the first.
func (v *Validator) CollectValidFileUpload(errs *secerr.ErrorList, context, dirPath, fileName string, content []byte, maxBytes int64, allowEmpty bool) error {
	if err := collectAssert(errs, context, func() error {
		_, err := v.GetValidFileName(context, fileName, nil, allowEmpty)
		return err
	}); err != nil {
		return err
	}
	if err := collectAssert(errs, context, func() error {
		_, err := v.GetValidDirectoryPath(context, dirPath, allowEmpty)
		return err
	}); err != nil {
		return err
	}
	return collectAssert(errs, context, func() error {
		_, err := v.GetValidFileContent(context, content, maxBytes, allowEmpty)
		return err
	})
}
