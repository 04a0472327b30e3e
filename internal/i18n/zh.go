package i18n

var zh = map[string]string{
	"initializing":       "正在加载记录...",
	"terminal_too_small": "终端窗口太小 (至少 80x24)",
	"current_size":       "当前: %dx%d",

	"tab_records":    "加油记录",
	"tab_efficiency": "油耗分析",
	"tab_statistics": "统计",

	"records_title": "加油记录",
	"no_records":    "暂无记录，按 a 添加。",
	"records_help":  "a: 添加  d: 删除  j/k: 移动",
	"col_index":     "#",
	"col_date":      "日期",
	"col_odometer":  "里程",
	"col_fuel":      "油量 (L)",
	"col_price":     "单价",
	"col_cost":      "金额",
	"col_station":   "加油站",
	"col_note":      "备注",

	"efficiency_title": "油耗分析",
	"no_efficiency":    "至少需要两条里程递增的记录。",
	"col_distance":     "行驶 (km)",
	"col_fuel_used":    "耗油 (L)",
	"col_km_per_l":     "km/L",
	"col_l_per_100km":  "L/100km",
	"col_span":         "里程区间",

	"statistics_title":         "统计",
	"monthly_title":            "月度汇总",
	"stat_total_records":       "记录数",
	"stat_total_cost":          "总花费",
	"stat_total_fuel":          "总油量 (L)",
	"stat_average_price":       "平均油价",
	"stat_total_distance":      "总里程 (km)",
	"stat_segment_distance":    "计量里程 (km)",
	"stat_average_consumption": "平均百公里油耗",
	"stat_period":              "时间范围",
	"col_month":                "月份",
	"col_fills":                "次数",
	"col_avg_price":            "均价",

	"add_record":        "添加加油记录",
	"add_help":          "Tab/Shift+Tab: 切换  Enter: 保存  Esc: 取消",
	"field_date":        "日期",
	"field_odometer":    "里程表 (km)",
	"field_fuel_amount": "加油量 (L)",
	"field_fuel_price":  "油价 (每升)",
	"field_station":     "加油站",
	"field_note":        "备注",

	"confirm_delete":      "删除 %s 里程 %s km 的记录?",
	"confirm_delete_help": "y: 删除  n/Esc: 保留",

	"notify_added":        "记录已添加",
	"notify_deleted":      "记录已删除",
	"notify_not_saved":    "已修改但未保存: %v",
	"notify_invalid":      "输入无效: %v",
	"notify_reloaded":     "已重新加载 (%d 条记录)",
	"notify_load_corrupt": "数据文件已损坏，以空记录启动",
	"notify_load_failed":  "无法读取数据: %v",
	"notify_delete_range": "无效的记录索引",
	"notify_delete_stale": "记录已变更，未删除",

	"help_group_views":   "视图",
	"help_group_ledger":  "记录",
	"help_group_general": "通用",
	"keyboard_shortcuts": "快捷键",
	"help_switch_views":  "切换视图",
	"help_cycle_views":   "循环切换视图",
	"help_navigate":      "移动光标",
	"help_top_bottom":    "跳到顶部 / 底部",
	"help_add":           "添加记录",
	"help_delete":        "删除选中记录",
	"help_toggle_help":   "显示/隐藏帮助",
	"help_open_settings": "打开设置",
	"help_reload":        "从存储重新加载",
	"help_quit":          "退出",
	"help_close":         "按 ? 或 Esc 关闭",

	"settings":         "设置",
	"setting_refresh":  "刷新 (秒)",
	"setting_language": "语言",
	"setting_bell":     "错误提示音",
	"setting_banner":   "通知横幅",
	"setting_backend":  "存储后端",
	"setting_restart":  "下次启动时生效",
	"settings_help":    "j/k: 移动  h/l: 修改  Esc: 保存并关闭",

	"status_help":     "帮助",
	"status_add":      "添加",
	"status_delete":   "删除",
	"status_settings": "设置",
	"status_refresh":  "重载",
	"status_quit":     "退出",
	"status_records":  "%d 条记录",

	"empty_ledger": "暂无记录。",

	// Web dashboard
	"web_title":          "油耗记录",
	"web_dashboard":      "仪表盘",
	"web_recent":         "最近记录",
	"web_delete":         "删除",
	"web_delete_confirm": "确定删除这条记录吗？",
	"web_submit":         "保存记录",
	"web_failed":         "请求失败",
	"web_not_saved":      "已修改但未保存",
	"web_invalid_index":  "无效的记录索引",
}
