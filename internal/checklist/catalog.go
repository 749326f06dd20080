// Package checklist holds the built-in packing list.
package checklist

import "fuji-trip/tripmap/internal/models/entities"

// DefaultExpanded is the category shown open on first load.
const DefaultExpanded = "documents"

var packingList = []entities.ChecklistCategory{
	{
		ID: "documents", Title: "證件文件", Emoji: "📄",
		Description: "出國必備證件與票券",
		Items: []entities.ChecklistItem{
			{ID: "passport", Name: "護照", Note: "效期需超過 6 個月", Important: true},
			{ID: "boarding-pass", Name: "長榮電子機票", Note: "BR184 / BR195", Important: true},
			{ID: "driving-permit", Name: "國際駕照 + 台灣駕照", Note: "ORIX 取車必備", Important: true},
			{ID: "hotel-vouchers", Name: "住宿預訂確認信"},
			{ID: "visit-japan-web", Name: "Visit Japan Web QR Code"},
			{ID: "travel-insurance", Name: "旅遊保險單"},
		},
	},
	{
		ID: "money", Title: "金錢支付", Emoji: "💴",
		Description: "現金與支付工具",
		Items: []entities.ChecklistItem{
			{ID: "yen-cash", Name: "日圓現金", Note: "部分飯店現地付款", Important: true},
			{ID: "credit-card", Name: "信用卡"},
			{ID: "suica", Name: "Suica / PASMO 交通卡"},
			{ID: "coin-purse", Name: "零錢包"},
		},
	},
	{
		ID: "electronics", Title: "電子產品", Emoji: "🔌",
		Description: "手機、充電與網路",
		Items: []entities.ChecklistItem{
			{ID: "phone", Name: "手機", Important: true},
			{ID: "phone-charger", Name: "手機充電器與線材"},
			{ID: "esim", Name: "eSIM / 網路分享器"},
			{ID: "camera", Name: "相機與記憶卡"},
			{ID: "car-charger", Name: "車用充電器", Note: "自駕使用"},
		},
	},
	{
		ID: "clothing", Title: "衣物", Emoji: "🧥",
		Description: "一月東京與富士山區禦寒",
		Items: []entities.ChecklistItem{
			{ID: "down-jacket", Name: "羽絨外套", Note: "富士山區低溫", Important: true},
			{ID: "thermal-wear", Name: "發熱衣褲"},
			{ID: "gloves-scarf", Name: "手套、圍巾、毛帽"},
			{ID: "walking-shoes", Name: "好走的鞋"},
			{ID: "socks", Name: "襪子"},
			{ID: "onsen-towel", Name: "溫泉用小毛巾"},
		},
	},
	{
		ID: "toiletries", Title: "盥洗用品", Emoji: "🧴",
		Description: "乾燥天氣保養",
		Items: []entities.ChecklistItem{
			{ID: "toothbrush", Name: "牙刷牙膏"},
			{ID: "skincare", Name: "保濕乳液、護唇膏"},
			{ID: "contact-lens", Name: "隱形眼鏡 / 眼鏡"},
		},
	},
	{
		ID: "medicine", Title: "藥品", Emoji: "💊",
		Description: "常備藥",
		Items: []entities.ChecklistItem{
			{ID: "cold-medicine", Name: "感冒藥"},
			{ID: "motion-sickness", Name: "暈車藥", Note: "山路自駕"},
			{ID: "heat-packs", Name: "暖暖包"},
			{ID: "personal-medicine", Name: "個人慣用藥品"},
		},
	},
}

// Categories returns a copy of the built-in categories.
func Categories() []entities.ChecklistCategory {
	out := make([]entities.ChecklistCategory, len(packingList))
	for i, c := range packingList {
		out[i] = c
		out[i].Items = append([]entities.ChecklistItem(nil), c.Items...)
	}
	return out
}

// Category looks up a category by id.
func Category(id string) (entities.ChecklistCategory, bool) {
	for _, c := range Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return entities.ChecklistCategory{}, false
}

// IsBuiltInItem reports whether id names a built-in item.
func IsBuiltInItem(id string) bool {
	for _, c := range packingList {
		for _, it := range c.Items {
			if it.ID == id {
				return true
			}
		}
	}
	return false
}

// BuiltInItemIDs lists every built-in item id in catalog order.
func BuiltInItemIDs() []string {
	var ids []string
	for _, c := range packingList {
		for _, it := range c.Items {
			ids = append(ids, it.ID)
		}
	}
	return ids
}
