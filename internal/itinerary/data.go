package itinerary

import "fuji-trip/tripmap/internal/models/entities"

const evaAir = "EVA AIR 長榮航空"

const goldStatus = "ゴールド (Gold)"

// tripDays is the built-in schedule. Ids follow "<day>-<index>".
var tripDays = []entities.DayPlan{
	{
		Day:   1,
		Date:  "2026/01/20 (二)",
		Title: "抵達、燈飾與壽司迎賓",
		Color: "#ef4444",
		Events: []entities.TripEvent{
			{
				ID: "1-1", Day: 1, Time: "12:00", Location: "成田機場 (NRT)", Activity: "抵達機場", Notes: "第一航廈",
				Lat: 35.772, Lng: 140.392, Type: entities.EventFlight,
				Flight: &entities.FlightInfo{
					Airline: evaAir, FlightNumber: "BR184",
					DepartureTime: "07:55", ArrivalTime: "12:00",
					DepartureAirport: "TPE 台北桃園", ArrivalAirport: "NRT 東京成田",
					Terminal: "第一航廈", Class: "V / 經濟艙", Baggage: "1PC", Status: "OK", Duration: "03:05",
				},
			},
			{
				ID: "1-2", Day: 1, Time: "13:00", Location: "ORIX 租車成田機場店", Activity: "取車手續",
				Notes: "預約號: 112072138 (PW: dcf3dd1a) / 68,420円 / Compact Hybrid (EA)",
				Lat:   35.765, Lng: 140.385, Type: entities.EventTransport,
			},
			{ID: "1-3", Day: 1, Time: "15:30", Location: "讀賣樂園", Activity: "寶石燈飾秀", Notes: "必看絕美點燈", Lat: 35.625, Lng: 139.517, Type: entities.EventSightseeing},
			{ID: "1-4", Day: 1, Time: "20:00", Location: "梅丘壽司之美登利", Activity: "晚餐", Notes: "新百合之丘OPA店", Lat: 35.602, Lng: 139.508, Type: entities.EventFood},
			{
				ID: "1-5", Day: 1, Time: "21:30", Location: "Hotel Molino Shin-Yuri", Activity: "住宿 Check-in", Notes: "首晚歇息",
				Lat: 35.602, Lng: 139.508, Type: entities.EventStay,
				Booking: &entities.Booking{
					Provider: "Official Site", Number: "0VM5XXCV", Price: "30,114円", Payment: "現地での支払い",
					Status: goldStatus, People: 2, Period: "2026/01/20 - 2026/01/21",
				},
			},
		},
	},
	{
		Day:   2,
		Date:  "2026/01/21 (三)",
		Title: "富士野生動物園全制霸",
		Color: "#3b82f6",
		Events: []entities.TripEvent{
			{ID: "2-0", Day: 2, Time: "08:00", Location: "Hotel Molino Shin-Yuri", Activity: "飯店出發", Notes: "自駕往御殿場方向", Lat: 35.602, Lng: 139.508, Type: entities.EventStay},
			{ID: "2-1", Day: 2, Time: "09:30", Location: "富士野生動物園", Activity: "叢林巴士、自駕Safari", Notes: "親近野生動物", TravelTime: "約 1 小時 30 分", Lat: 35.247, Lng: 138.838, Type: entities.EventSightseeing},
			{ID: "2-2", Day: 2, Time: "11:15", Location: "富士野生動物園", Activity: "Super Jungle Bus", Notes: "需提早報到", Lat: 35.247, Lng: 138.838, Type: entities.EventSightseeing},
			{ID: "2-3", Day: 2, Time: "16:00", Location: "Sawayaka 漢堡 炭焼きレストランさわやか 御殿場インター店", Activity: "抽號碼牌", Notes: "必吃漢堡排，需提前抽號", TravelTime: "約 40 分", Lat: 35.294, Lng: 138.945, Type: entities.EventFood},
			{ID: "2-4", Day: 2, Time: "17:00", Location: "御殿場 Premium Outlets", Activity: "逛街購物", Notes: "精品與風景", ImportantNotes: "持長榮登機證換旅行袋", TravelTime: "約 10 分", Lat: 35.308, Lng: 138.966, Type: entities.EventShopping},
			{ID: "2-5", Day: 2, Time: "21:00", Location: "木之花之湯", Activity: "溫泉享受", Notes: "放鬆身心", Lat: 35.305, Lng: 138.968, Type: entities.EventSightseeing},
			{
				ID: "2-6", Day: 2, Time: "22:00", Location: "HOTEL CLAD", Activity: "住宿", Notes: "御殿場住宿",
				Lat: 35.308, Lng: 138.966, Type: entities.EventStay,
				Booking: &entities.Booking{
					Provider: "Official Site", Number: "09MX8JW1", Price: "29,080円", Payment: "オンラインカード決済",
					Status: goldStatus, People: 2, Period: "2026/01/21 - 2026/01/22",
				},
			},
		},
	},
	{
		Day:   3,
		Date:  "2026/01/22 (四)",
		Title: "圍爐裏燒烤與新宿之夜",
		Color: "#22c55e",
		Events: []entities.TripEvent{
			{ID: "3-0", Day: 3, Time: "08:30", Location: "HOTEL CLAD", Activity: "飯店出發", Notes: "往山中湖", Lat: 35.308, Lng: 138.966, Type: entities.EventStay},
			{ID: "3-1", Day: 3, Time: "09:30", Location: "山中湖 KABA BUS", Activity: "水陸巴士", Notes: "湖上體驗", Lat: 35.423, Lng: 138.875, Type: entities.EventSightseeing},
			{ID: "3-2", Day: 3, Time: "11:30", Location: "新倉山淺間公園", Activity: "參拜/拍照", Notes: "忠靈塔必拍", Lat: 35.491, Lng: 138.804, Type: entities.EventSightseeing},
			{ID: "3-3", Day: 3, Time: "13:00", Location: "山麓園 Sanrokuen", Activity: "午餐", Notes: "傳統圍爐裏燒烤", Lat: 35.485, Lng: 138.773, Type: entities.EventFood},
			{
				ID: "3-4", Day: 3, Time: "16:30", Location: "西鐵 Inn 新宿", Activity: "還車/Check-in", Notes: "入住西鐵 Inn",
				Lat: 35.694, Lng: 139.695, Type: entities.EventStay,
				Booking: &entities.Booking{
					Provider: "Official Site", Number: "09MQGKHC", Price: "42,200円", Payment: "現地での支払い",
					Status: goldStatus, People: 2, Period: "2026/01/22 - 2026/01/24",
				},
			},
			{ID: "3-5", Day: 3, Time: "17:00", Location: "東京都廳 南展望室", Activity: "賞夜景", Notes: "免費俯瞰東京", Lat: 35.689, Lng: 139.691, Type: entities.EventSightseeing},
			{ID: "3-6", Day: 3, Time: "18:30", Location: "牛舌の檸檬", Activity: "晚餐", Notes: "極厚切牛舌", Lat: 35.693, Lng: 139.698, Type: entities.EventFood},
			{ID: "3-7", Day: 3, Time: "20:00", Location: "回憶橫丁", Activity: "夜生活", Notes: "昭和風情街", Lat: 35.693, Lng: 139.699, Type: entities.EventSightseeing},
			{ID: "3-8", Day: 3, Time: "20:30", Location: "歌舞伎町", Activity: "夜生活", Notes: "哥吉拉頭地標", Lat: 35.694, Lng: 139.702, Type: entities.EventSightseeing},
			{ID: "3-9", Day: 3, Time: "21:30", Location: "西鐵 Inn 新宿", Activity: "住宿", Notes: "返回飯店休息", Lat: 35.694, Lng: 139.695, Type: entities.EventStay},
		},
	},
	{
		Day:   4,
		Date:  "2026/01/23 (五)",
		Title: "強運、行軍與頂級牛排",
		Color: "#a855f7",
		Events: []entities.TripEvent{
			{ID: "4-0", Day: 4, Time: "07:30", Location: "西鐵 Inn 新宿", Activity: "飯店出發", Notes: "前往築地", Lat: 35.694, Lng: 139.695, Type: entities.EventStay},
			{ID: "4-1", Day: 4, Time: "08:00", Location: "築地場外市場", Activity: "吃早餐", Notes: "海鮮大賞", Lat: 35.665, Lng: 139.771, Type: entities.EventFood},
			{ID: "4-2", Day: 4, Time: "09:30", Location: "小網神社", Activity: "參拜", Notes: "強運厄除、洗錢", Lat: 35.685, Lng: 139.777, Type: entities.EventSightseeing},
			{ID: "4-3", Day: 4, Time: "11:00", Location: "銀座 炸豬排 檍", Activity: "午餐", Notes: "極上炸豬排", Lat: 35.669, Lng: 139.761, Type: entities.EventFood},
			{ID: "4-4", Day: 4, Time: "12:30", Location: "皇居二重橋", Activity: "散步", Notes: "皇室氣派", Lat: 35.679, Lng: 139.758, Type: entities.EventSightseeing},
			{ID: "4-5", Day: 4, Time: "14:30", Location: "宮下公園", Activity: "散步/咖啡", Notes: "澀谷新地標星巴克", Lat: 35.662, Lng: 139.702, Type: entities.EventSightseeing},
			{ID: "4-6", Day: 4, Time: "16:00", Location: "SHIBUYA SKY", Activity: "賞夕陽夜景", Notes: "澀谷之巔", Lat: 35.658, Lng: 139.702, Type: entities.EventSightseeing},
			{ID: "4-7", Day: 4, Time: "17:30", Location: "AND THE FRIET", Activity: "點心", Notes: "澀谷 Hikarie B2F", Lat: 35.658, Lng: 139.703, Type: entities.EventFood},
			{ID: "4-8", Day: 4, Time: "18:30", Location: "Peter Luger Steakhouse", Activity: "頂級晚餐", Notes: "惠比壽分店", Lat: 35.643, Lng: 139.715, Type: entities.EventFood},
			{ID: "4-9", Day: 4, Time: "21:00", Location: "西鐵 Inn 新宿", Activity: "住宿", Notes: "返回住宿", Lat: 35.694, Lng: 139.695, Type: entities.EventStay},
		},
	},
	{
		Day:   5,
		Date:  "2026/01/24 (六)",
		Title: "招財貓、吉祥寺與返台",
		Color: "#f97316",
		Events: []entities.TripEvent{
			{ID: "5-0", Day: 5, Time: "07:00", Location: "西鐵 Inn 新宿", Activity: "飯店出發", Notes: "最後一天行程", Lat: 35.694, Lng: 139.695, Type: entities.EventStay},
			{ID: "5-1", Day: 5, Time: "07:30", Location: "明治神宮", Activity: "晨間散步", Notes: "森林芬多精", Lat: 35.676, Lng: 139.699, Type: entities.EventSightseeing},
			{ID: "5-2", Day: 5, Time: "09:00", Location: "豪德寺", Activity: "參拜", Notes: "招財貓起源", Lat: 35.648, Lng: 139.647, Type: entities.EventSightseeing},
			{ID: "5-3", Day: 5, Time: "10:30", Location: "下北澤", Activity: "逛街", Notes: "古著與咖啡", Lat: 35.662, Lng: 139.667, Type: entities.EventShopping},
			{ID: "5-4", Day: 5, Time: "12:00", Location: "根岸牛舌 吉祥寺店", Activity: "午餐", Notes: "Negishi 精選", Lat: 35.703, Lng: 139.580, Type: entities.EventFood},
			{ID: "5-5", Day: 5, Time: "13:00", Location: "井之頭恩賜公園", Activity: "散步", Notes: "舒適綠意", Lat: 35.700, Lng: 139.576, Type: entities.EventSightseeing},
			{ID: "5-6", Day: 5, Time: "15:30", Location: "成田機場 (NRT)", Activity: "自駕前往機場", Notes: "還車 (17:30截止)", Lat: 35.772, Lng: 140.392, Type: entities.EventTransport},
			{
				ID: "5-7", Day: 5, Time: "20:20", Location: "成田機場 (NRT)", Activity: "搭機返台", Notes: "第一航廈 BR195",
				Lat: 35.772, Lng: 140.392, Type: entities.EventFlight,
				Flight: &entities.FlightInfo{
					Airline: evaAir, FlightNumber: "BR195",
					DepartureTime: "20:20", ArrivalTime: "23:25",
					DepartureAirport: "NRT 東京成田", ArrivalAirport: "TPE 台北桃園",
					Terminal: "第一航廈", Class: "Q / 經濟艙", Baggage: "2PC", Status: "OK", Duration: "04:05",
				},
			},
		},
	},
}
