package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":               "パイプラインを開始します",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Output saved to %s":              "出力を %s に保存しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",

		// Timing stage
		"Computing timing plan": "タイミングプランを計算中",
		"Timing: %d images x %.1fs at %d fps (%.1fs total)": "タイミング: %d 枚 x %.1f秒, %d fps (合計 %.1f秒)",

		// Transform stage
		"Building transforms for %d frames": "%d フレームの変換を構築中",
		"Frame %d: %dx%d, zoom %s":          "フレーム %d: %dx%d, ズーム %s",

		// Assemble stage
		"Assembling filter graph":              "フィルターグラフを組み立て中",
		"Audio attached: %s, trimmed to %.2fs": "音声を追加: %s, %.2f秒にトリミング",
		"Probing audio duration: %s":           "音声の長さを測定中: %s",

		// Render stage (ffmpeg component)
		"Rendering %d segments to %s": "%d セグメントを %s にレンダリング中",
		"Launching %s %s":             "%s %s を起動中",
		"Render state: %s -> %s":      "レンダリング状態: %s -> %s",
		"ffmpeg stderr: %s":           "ffmpeg 標準エラー出力: %s",
		"Rendered %d bytes in %.1fs":  "%.1f秒で %d バイトをレンダリングしました",

		// Title card
		"Generating title card":       "タイトルカードを生成中",
		"Title card generated: %dx%d": "タイトルカード生成完了: %dx%d",

		// Scene generation
		"Requesting scenes for prompt (%d chars)": "プロンプト (%d 文字) のシーンを要求中",
		"Downloading %d scene images":             "%d 枚のシーン画像をダウンロード中",
		"Downloaded %s":                           "%s をダウンロードしました",

		// Server
		"Listening on %s":                "%s で待ち受け中",
		"Server busy, rejecting request": "サーバーがビジー状態のため、リクエストを拒否します",
		"Low memory (%.1f%% used), rejecting request": "メモリ不足 (%.1f%% 使用中) のため、リクエストを拒否します",
		"Generation %s completed in %.1fs":            "生成 %s が %.1f秒で完了しました",
		"Generation %s failed: %s":                    "生成 %s が失敗しました: %s",

		// Output validation
		"Output inspection skipped: %s": "出力の検査をスキップしました: %s",

		// Warnings
		"Removing partial output %s": "不完全な出力 %s を削除中",
		"Render timed out after %ds": "レンダリングが %d秒でタイムアウトしました",

		// Errors
		"Failed to render video: %s": "動画のレンダリングに失敗しました: %s",
		"Failed to write output: %s": "出力の書き込みに失敗しました: %s",
		"Failed to fetch images: %s": "画像の取得に失敗しました: %s",
	})
}
