package model

// Activity 活动名称
type Activity string

const (
	ActivityStudy     Activity = "study"
	ActivityWork      Activity = "work"
	ActivityHobby     Activity = "hobby"
	ActivityReading   Activity = "reading"
	ActivityExercise  Activity = "exercise"
	ActivityHousework Activity = "housework"
	ActivityFriends   Activity = "friends"
	ActivitySleep     Activity = "sleep"
	ActivityYoutube   Activity = "youtube"
	ActivityGame      Activity = "game"
)

// Activities 按提示词中的顺序列出全部活动
var Activities = []Activity{
	ActivityStudy,
	ActivityWork,
	ActivityHobby,
	ActivityReading,
	ActivityExercise,
	ActivityHousework,
	ActivityFriends,
	ActivitySleep,
	ActivityYoutube,
	ActivityGame,
}

const (
	ModeNormal  = "normal"
	ModeHoliday = "holiday"
)

// IsHoliday 同时接受英文和移动端发送的韩文休息日标记
func IsHoliday(mode string) bool {
	return mode == ModeHoliday || mode == "휴일"
}

// ActivityLog /ask 接收的活动记录
type ActivityLog struct {
	Date       string             `json:"date"`
	Mode       string             `json:"mode"`
	Activities map[string]float64 `json:"activities"`
}

func (l ActivityLog) Hours(a Activity) float64 {
	return l.Activities[string(a)]
}

// DailyActivities /evaluate 的严格类型活动记录，所有字段必填
type DailyActivities struct {
	Study     *float64 `json:"study" binding:"required,gte=0"`
	Work      *float64 `json:"work" binding:"required,gte=0"`
	Hobby     *float64 `json:"hobby" binding:"required,gte=0"`
	Reading   *float64 `json:"reading" binding:"required,gte=0"`
	Exercise  *float64 `json:"exercise" binding:"required,gte=0"`
	Housework *float64 `json:"housework" binding:"required,gte=0"`
	Friends   *float64 `json:"friends" binding:"required,gte=0"`
	Sleep     *float64 `json:"sleep" binding:"required,gte=0"`
	Youtube   *float64 `json:"youtube" binding:"required,gte=0"`
	Game      *float64 `json:"game" binding:"required,gte=0"`
}

type StrictActivityLog struct {
	Date       string          `json:"date" binding:"required"`
	Mode       string          `json:"mode" binding:"required"`
	Activities DailyActivities `json:"activities"`
}
