package dto

// ── 日历泳道视图 DTO ──

// CalendarDayRequest 单日泳道视图查询参数
// facility_ids 为空表示全部场地可见；窗口与比例缺省取服务端配置
type CalendarDayRequest struct {
	Day           string   `form:"day"             binding:"required"` // "2024-01-15"
	FacilityIDs   []string `form:"facility_ids"`
	StartHour     *int     `form:"start_hour"      binding:"omitempty,min=0,max=23"`
	EndHour       *int     `form:"end_hour"        binding:"omitempty,min=1,max=24"`
	PixelsPerHour *int     `form:"pixels_per_hour" binding:"omitempty,min=1"`
}

// CalendarEvent 泳道内的单个事件块
// top/height 为相对泳道顶部的像素几何；display_status 为读取时推导的展示状态
type CalendarEvent struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	GroupID       string `json:"group_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	SeriesID      string `json:"series_id,omitempty"`
	Status        string `json:"status"`         // 持久化状态
	DisplayStatus string `json:"display_status"` // scheduled | completed | cancelled | delayed
	Color         string `json:"color"`          // 左边框强调色
	Top           int    `json:"top"`            // 像素偏移（≥0）
	Height        int    `json:"height"`         // 像素高度
}

// CalendarLane 一条场地泳道
type CalendarLane struct {
	FacilityID   string          `json:"facility_id"`
	FacilityName string          `json:"facility_name"`
	Events       []CalendarEvent `json:"events"`
}

// CalendarDayResponse 单日泳道视图响应
type CalendarDayResponse struct {
	Day           string         `json:"day"`
	StartHour     int            `json:"start_hour"`
	EndHour       int            `json:"end_hour"`
	PixelsPerHour int            `json:"pixels_per_hour"`
	Lanes         []CalendarLane `json:"lanes"`
}
