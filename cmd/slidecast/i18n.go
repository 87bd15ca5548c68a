// Package main provides localization for the slidecast CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Compose slideshow videos from still images and audio.": "静止画と音声からスライドショー動画を作成します。",

		// Compose command
		"Compose still images and audio into an MP4 video.": "静止画と音声をMP4動画に合成",

		// Serve command
		"Run the HTTP generation server.": "HTTP生成サーバーを起動",

		// Version command
		"Show version information.":    "バージョン情報を表示",
		"slidecast (Go) version %s":    "slidecast (Go版) バージョン %s",

		// Arguments and flags
		"Paths of still images, in playback order.":                  "静止画のパス（再生順）",
		"Output MP4 file path.":                                      "出力MP4ファイルパス",
		"Audio file attached to the video (trimmed to the video length).": "動画に付加する音声ファイル（動画の長さに切り詰め）",
		"Canvas preset (landscape or portrait).":                     "キャンバスプリセット（landscape, portrait）",
		"Quality preset (low, medium, high).":                        "品質プリセット（low, medium, high）",
		"Output video width (default: 1280).":                        "出力動画の幅（デフォルト: 1280）",
		"Output video height (default: 720).":                        "出力動画の高さ（デフォルト: 720）",
		"Seconds each image is shown (default: 3.0).":                "各画像の表示秒数（デフォルト: 3.0）",
		"Output frame rate (default: 30).":                           "出力フレームレート（デフォルト: 30）",
		"Color saturation multiplier (default: 1.3).":                "彩度の倍率（デフォルト: 1.3）",
		"Contrast multiplier (default: 1.1).":                        "コントラストの倍率（デフォルト: 1.1）",
		"Zoom increment per frame (default: 0.005).":                 "フレームごとのズーム増分（デフォルト: 0.005）",
		"Maximum zoom factor (default: 2.0).":                        "最大ズーム倍率（デフォルト: 2.0）",
		"Handheld jitter amplitude in pixels (default: 5).":          "手持ち風の揺れの振幅（ピクセル、デフォルト: 5）",
		"Prepend a title card with this text.":                       "このテキストのタイトルカードを先頭に追加",
		"Subtitle shown under the title card text.":                  "タイトルカードの下に表示するサブタイトル",
		"Video CRF value (lower is better, overrides quality preset).": "動画のCRF値（低いほど高品質、品質プリセットを上書き）",
		"Render timeout in seconds (default: 600).":                  "レンダリングのタイムアウト秒数（デフォルト: 600）",
		"Path to ffmpeg executable (falls back to FFMPEG_PATH env, then system default).":   "ffmpeg実行ファイルのパス（FFMPEG_PATH環境変数、次にシステム既定にフォールバック）",
		"Path to ffprobe executable (falls back to FFPROBE_PATH env, then system default).": "ffprobe実行ファイルのパス（FFPROBE_PATH環境変数、次にシステム既定にフォールバック）",
		"Enable debug output.":                                       "デバッグ出力を有効化",
		"Directory for debug output.":                                "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error).":                      "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":                                   "全てのログ出力を抑制",

		// Serve flags
		"Path to YAML configuration file.":                             "YAML設定ファイルのパス",
		"Listen address (overrides config file).":                      "待ち受けアドレス（設定ファイルを上書き）",
		"Directory for uploads and rendered videos (overrides config file).": "アップロードと動画出力のディレクトリ（設定ファイルを上書き）",

		// Runtime messages
		"Composing %d images into %s (%s preset)...": "%d 枚の画像を %s に合成中 (%s プリセット)...",
		"Output saved to %s":                         "出力を %s に保存しました",
		"Interrupted, shutting down...":              "中断されました。シャットダウン中...",
	})
}
