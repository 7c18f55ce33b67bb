//go:build tools

package tools

// Developer tooling, never built into a binary:
//
//	go tool goose -dir migrations postgres "$DATABASE_DSN" status   (pinned by the tool directive in go.mod)
//	go run github.com/matryer/moq@latest                           (regenerates *_mock_test.go, see go:generate lines)
