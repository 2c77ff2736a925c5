package adapters

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/shouni/gemini-edit-kit/pkg/domain"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

const cacheKeySourceBytes = "source_bytes:"

// ImageCacher は取得済み画像バイト列のキャッシュ操作を抽象化するインターフェースです。
type ImageCacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
}

// RemoteSourceFetcher は https:// と gs:// の URI から選択用の画像を取得する
// コンポーネントです。session.SourceFetcher 契約を実装します。
type RemoteSourceFetcher struct {
	reader     remoteio.InputReader
	httpClient httpkit.ClientInterface
	cache      ImageCacher
	expiration time.Duration
}

// NewRemoteSourceFetcher は依存関係を注入して RemoteSourceFetcher を初期化します。
func NewRemoteSourceFetcher(reader remoteio.InputReader, httpClient httpkit.ClientInterface, cache ImageCacher, cacheTTL time.Duration) (*RemoteSourceFetcher, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// cache は nil を許容（キャッシュなし動作）

	return &RemoteSourceFetcher{
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// FetchSource は URI から画像を取得し、選択に使える SourceImage へ正規化します。
func (f *RemoteSourceFetcher) FetchSource(ctx context.Context, uri string) (*domain.SourceImage, error) {
	data, err := f.fetchBytes(ctx, uri)
	if err != nil {
		return nil, err
	}
	return PrepareSourceImage(data, SourceSizeLimit, RecompressQuality)
}

func (f *RemoteSourceFetcher) fetchBytes(ctx context.Context, uri string) ([]byte, error) {
	cacheKey := cacheKeySourceBytes + uri
	if f.cache != nil {
		if val, ok := f.cache.Get(cacheKey); ok {
			if data, ok := val.([]byte); ok {
				return data, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "uri", uri, "type", fmt.Sprintf("%T", val))
		}
	}

	var data []byte
	var err error
	if strings.HasPrefix(uri, "gs://") {
		data, err = f.readRemote(ctx, uri)
	} else {
		if safe, verr := isSafeURL(uri); verr != nil || !safe {
			return nil, fmt.Errorf("安全ではないURLが指定されました: %w", verr)
		}
		data, err = f.httpClient.FetchBytes(ctx, uri)
	}
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		f.cache.Set(cacheKey, data, f.expiration)
	}
	return data, nil
}

func (f *RemoteSourceFetcher) readRemote(ctx context.Context, uri string) ([]byte, error) {
	rc, err := f.reader.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// isSafeURL は SSRF (Server-Side Request Forgery) 対策として URL を検証します。
// 許可されたスキーム (http, https) かつ、プライベートIPやループバックアドレスを
// ターゲットにしていないことを確認します。
func isSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolved, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("ホスト '%s' の名前解決に失敗しました: %w", host, err)
		}
		ips = resolved
	}

	if len(ips) == 0 {
		return false, fmt.Errorf("IPが見つかりません")
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
