package engine

import (
	"fmt"

	"pdf-toolkit/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// grantedPermissions is the fixed permission bitset applied to encrypted
// output: printing, content copying, annotating and accessibility extraction
// are allowed, everything else stays denied.
const grantedPermissions = model.PermissionsNone |
	model.PermissionPrintRev2 |
	model.PermissionPrintRev3 |
	model.PermissionExtract |
	model.PermissionExtractRev3 |
	model.PermissionModAnnFillForm

// Encrypt writes an AES-256 encrypted copy of the document. The owner
// password defaults to the user password when empty.
func (e *Engine) Encrypt(path, outputPath, userPassword, ownerPassword string) error {
	if userPassword == "" {
		return &domain.ValidationError{Field: "user_password", Message: "password is required"}
	}
	if ownerPassword == "" {
		ownerPassword = userPassword
	}
	if err := requireSource(path); err != nil {
		return err
	}

	conf := e.conf()
	conf.UserPW = userPassword
	conf.OwnerPW = ownerPassword
	conf.EncryptUsingAES = true
	conf.EncryptKeyLength = 256
	conf.Permissions = grantedPermissions

	if err := api.EncryptFile(path, outputPath, conf); err != nil {
		discard(outputPath)
		return fmt.Errorf("%w: %v", domain.ErrEncryptionUnsupported, err)
	}

	e.logger.Info("encrypted document", "path", path, "output", outputPath)
	return nil
}

// Decrypt attempts to write a decrypted copy of the document, authenticating
// with password. Unlike the other operations it reports failure as a plain
// false instead of an error: a wrong password is an expected, common case
// and callers need it to be cheap to check. An unencrypted source is copied
// through unchanged and still reports success.
func (e *Engine) Decrypt(path, outputPath, password string) bool {
	info, err := e.Info(path)
	if err != nil {
		e.logger.Warn("decrypt: cannot inspect document", "path", path, "error", err)
		return false
	}

	if !info.Encrypted {
		if err := copyFile(path, outputPath); err != nil {
			e.logger.Warn("decrypt: copy failed", "path", path, "error", err)
			return false
		}
		return true
	}

	conf := e.conf()
	conf.UserPW = password
	conf.OwnerPW = password

	if err := api.DecryptFile(path, outputPath, conf); err != nil {
		discard(outputPath)
		e.logger.Info("decrypt failed", "path", path, "error", err)
		return false
	}

	e.logger.Info("decrypted document", "path", path, "output", outputPath)
	return true
}
