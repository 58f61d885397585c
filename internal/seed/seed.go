// Package seed provides database seeding so the board is demonstrable out of
// the box.
package seed

import (
	"fmt"
	"log"

	"caseboard/internal/models"

	"gorm.io/gorm"
)

// sampleCases are the illustrative records inserted on first startup.
var sampleCases = []models.Case{
	{
		Title:   "AI で問い合わせ自動振り分け",
		Summary: "問い合わせを分類し担当へ自動エスカレーション。",
		Detail:  "自然言語でカテゴリを推定し、Jira キューへ振り分け。SLA 違反を 25% 減。",
		Tags:    models.TagList{"自動化", "ヘルプデスク", "AI"},
		Owner:   "IT サービスデスク",
		Impact:  "SLA違反 -25%",
		Date:    "2025-05-01",
		Likes:   8,
	},
	{
		Title:   "リモートワーク VPN 可視化",
		Summary: "帯域・同時接続をダッシュボード化し混雑を緩和。",
		Detail:  "ピーク時のゲート自動増設で接続失敗を 30% 減少。",
		Tags:    models.TagList{"監視", "クラウド", "運用改善"},
		Owner:   "ネットワークチーム",
		Impact:  "失敗率 -30%",
		Date:    "2025-04-18",
		Likes:   5,
	},
	{
		Title:   "権限申請のセルフサービス化",
		Summary: "フォーム化と承認フロー自動化でリードタイム短縮。",
		Detail:  "Power Automate で承認を自動化し 3 日→1 日へ短縮。",
		Tags:    models.TagList{"権限管理", "自動化", "ナレッジ"},
		Owner:   "ID 管理",
		Impact:  "リードタイム -66%",
		Date:    "2025-05-10",
		Likes:   7,
	},
}

// Cases inserts the sample cases when the table holds no rows at all.
// Soft-deleted rows count as stored rows, so a board whose every case was
// deleted is not re-seeded.
func Cases(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Case{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count cases: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range sampleCases {
		c := sampleCases[i]
		c.PV = 0
		if err := db.Create(&c).Error; err != nil {
			return fmt.Errorf("seed case %q: %w", c.Title, err)
		}
	}

	log.Printf("seeded %d sample cases", len(sampleCases))
	return nil
}
