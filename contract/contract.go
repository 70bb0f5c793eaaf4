//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import "context"

// FileUploader is the external upload step for image, file and speech
// payloads. It returns the server-side file id.
type FileUploader interface {
	Upload(ctx context.Context, sessionID, fileName string, content []byte) (string, error)
}
