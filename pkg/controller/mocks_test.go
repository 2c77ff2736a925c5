package controller

import (
	"context"
)

// --- Mocks ---

type mockEncoder struct {
	result string
	err    error
	calls  int
	fn     func(ctx context.Context, data []byte) (string, error)

	lastData []byte
}

func (m *mockEncoder) Encode(ctx context.Context, data []byte) (string, error) {
	m.calls++
	m.lastData = data
	if m.fn != nil {
		return m.fn(ctx, data)
	}
	return m.result, m.err
}

type mockEditClient struct {
	result string
	err    error
	calls  int
	fn     func(ctx context.Context, encodedImage, mimeType, prompt string) (string, error)

	lastEncoded string
	lastMime    string
	lastPrompt  string
}

func (m *mockEditClient) EditImage(ctx context.Context, encodedImage, mimeType, prompt string) (string, error) {
	m.calls++
	m.lastEncoded = encodedImage
	m.lastMime = mimeType
	m.lastPrompt = prompt
	if m.fn != nil {
		return m.fn(ctx, encodedImage, mimeType, prompt)
	}
	return m.result, m.err
}

// blankError はメッセージを持たないコラボレーター失敗を再現します。
type blankError struct{}

func (blankError) Error() string { return "" }
