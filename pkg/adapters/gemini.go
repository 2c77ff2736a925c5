package adapters

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-edit-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// GeminiEditClient は Gemini を使って画像編集を実行するアダプター層です。
// コントローラーの EditServiceClient 契約（テキストin/テキストout）を実装し、
// 転送表現と Gemini のワイヤ型の変換をここに閉じ込めます。
type GeminiEditClient struct {
	aiClient gemini.GenerativeModel // 通信クライアント
	model    string                 // 使用するモデル名
}

// NewGeminiEditClient は依存関係を注入して GeminiEditClient を初期化します。
func NewGeminiEditClient(aiClient gemini.GenerativeModel, model string) (*GeminiEditClient, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (gemini.GenerativeModel) is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}
	return &GeminiEditClient{aiClient: aiClient, model: model}, nil
}

// EditImage はエンコード済みの元画像と編集指示を Gemini に送り、
// 編集結果をエンコード済みペイロードとして返します。
func (c *GeminiEditClient) EditImage(ctx context.Context, encodedImage, mimeType, prompt string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encodedImage)
	if err != nil {
		return "", fmt.Errorf("転送ペイロードの復号に失敗しました: %w", err)
	}

	// 編集指示テキスト + 元画像（インラインデータ）の2パーツ構成
	parts := []*genai.Part{
		{Text: prompt},
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
	}

	slog.Info("Geminiに画像編集をリクエストします", "model", c.model, "mime_type", mimeType)
	resp, err := c.aiClient.GenerateWithParts(ctx, c.model, parts, gemini.GenerateOptions{})
	if err != nil {
		return "", fmt.Errorf("Gemini画像編集エラー: %w", err)
	}

	out, err := parseEditResponse(resp)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(out.Data), nil
}

// parseEditResponse は Gemini のレスポンスから編集結果の画像パーツを抽出します。
func parseEditResponse(resp *gemini.Response) (*domain.EditResponse, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return nil, fmt.Errorf("Geminiからの有効な応答がありませんでした")
	}

	// 最初の候補 (Candidate) のみを利用する
	candidate := resp.RawResponse.Candidates[0]

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &domain.EditResponse{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("画像編集が異常終了しました (FinishReason: %s)", candidate.FinishReason)
	}

	return nil, fmt.Errorf("編集結果に画像データが見つかりませんでした")
}
