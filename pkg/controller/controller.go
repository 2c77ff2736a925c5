package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shouni/gemini-edit-kit/pkg/domain"
	"github.com/shouni/gemini-edit-kit/pkg/session"
)

// ValidationMessage は検証失敗時にユーザーへ表示する固定文言です。
const ValidationMessage = "Please upload an image and provide a prompt."

var (
	// ErrValidation は画像未選択または空プロンプトでの送信を表します。
	ErrValidation = errors.New("image and prompt are required")
	// ErrEncoding はエンコーダーの失敗を表します。
	ErrEncoding = errors.New("failed to encode source image")
	// ErrRemote はリモート編集呼び出しの失敗を表します。
	ErrRemote = errors.New("image edit request failed")
	// ErrSubmissionInFlight は送信中の再送信を表します。状態は変化しません。
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

// resultImagePrefix は結果ペイロードの表示用フレーミングです。
// 返却ペイロードは常に PNG とみなし、中身の形式は検査しません。
const resultImagePrefix = "data:image/png;base64,"

// SubmissionController は送信のライフサイクルを司る状態機械です。
// 検証 → Loading → エンコード → リモート呼び出し → Success/Error の遷移を
// 注入された EditorState 上で行います。リトライ・バックオフ・キャンセルは
// 持たず、失敗はその送信にとって終端です。
type SubmissionController struct {
	state   *session.EditorState
	encoder PayloadEncoder
	client  EditServiceClient
}

// NewSubmissionController は依存関係を注入して SubmissionController を初期化します。
func NewSubmissionController(state *session.EditorState, encoder PayloadEncoder, client EditServiceClient) (*SubmissionController, error) {
	if state == nil {
		return nil, fmt.Errorf("state is required")
	}
	if encoder == nil {
		return nil, fmt.Errorf("encoder (PayloadEncoder) is required")
	}
	if client == nil {
		return nil, fmt.Errorf("client (EditServiceClient) is required")
	}
	return &SubmissionController{state: state, encoder: encoder, client: client}, nil
}

// Submit は1回分の送信を実行します。
//
//  1. 送信中なら ErrSubmissionInFlight（状態は触らない）
//  2. 検証: 画像なし、またはトリム後に空のプロンプト → 固定文言の Error 状態
//  3. リモート呼び出しの前に必ず Loading を観測可能にする
//  4. エンコード → 編集呼び出し、失敗はすべて Error 状態へ畳み込む
//  5. 成功時は data:image/png;base64,<payload> として Success 状態へ
//
// 送信開始後に画像が再選択された場合、終端状態は適用されません
// （最新の選択が勝ち、ストアは再選択が戻した Idle のままです）。
func (c *SubmissionController) Submit(ctx context.Context, img *domain.SourceImage, prompt string) error {
	if c.state.Request().Status() == domain.StatusLoading {
		return ErrSubmissionInFlight
	}

	// 検証はコラボレーターに到達する前の唯一のゲート
	if img == nil || strings.TrimSpace(prompt) == "" {
		c.state.SetRequest(domain.Failure(ValidationMessage))
		return ErrValidation
	}

	gen, ok := c.state.BeginLoading()
	if !ok {
		return ErrSubmissionInFlight
	}

	encoded, err := c.encoder.Encode(ctx, img.Data)
	if err != nil {
		c.state.CompleteRequest(gen, domain.Failure(failureMessage(err)))
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	payload, err := c.client.EditImage(ctx, encoded, img.MimeType, prompt)
	if err != nil {
		c.state.CompleteRequest(gen, domain.Failure(failureMessage(err)))
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}

	c.state.CompleteRequest(gen, domain.Success(resultImagePrefix+payload))
	return nil
}

// SubmitCurrent はストアが保持する現在の選択とプロンプトで送信します。
func (c *SubmissionController) SubmitCurrent(ctx context.Context) error {
	img, prompt := c.state.Selection()
	return c.Submit(ctx, img, prompt)
}

// SubmitAsync は Submit を別ゴルーチンで実行し、完了を1回だけ通知する
// チャネルを返します。セッションの実行モデルはシングルフライトのままで、
// 並行送信はゲートが ErrSubmissionInFlight で弾きます。
func (c *SubmissionController) SubmitAsync(ctx context.Context, img *domain.SourceImage, prompt string) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- c.Submit(ctx, img, prompt)
	}()
	return done
}

// failureMessage はコラボレーターのエラーから表示用メッセージを取り出します。
// 空のメッセージは domain.Failure 側で既定文言に置き換えられます。
func failureMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
