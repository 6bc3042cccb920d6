package service

import "time"

// 每周循环展开
//
// 设计说明：
//   - 展开是纯函数：相同输入必然产生相同的实例序列，不依赖时钟或任何隐藏状态。
//   - 首个实例（#0）不做上界检查，按请求原样生成；仅后续实例受赛季结束日约束。
//     因此首次时间已超出赛季的每周请求仍会产生恰好一个实例。
//   - 终止判定单独成函数，保证"越过赛季上界即停止"可独立测试，
//     避免夏令时等时钟边界下的意外死循环。

// Occurrence 展开出的一次具体时段
type Occurrence struct {
	Start time.Time
	End   time.Time
}

// weeklyStride 每周循环的固定步长
const weeklyStride = 7 // 天

// NextOccurrence 计算下一周的同一时段（开始与结束同步前移 7 天）
func NextOccurrence(o Occurrence) Occurrence {
	return Occurrence{
		Start: o.Start.AddDate(0, 0, weeklyStride),
		End:   o.End.AddDate(0, 0, weeklyStride),
	}
}

// ExceedsSeasonEnd 终止判定：下一次开始时间是否已越过赛季上界（含当日 23:59:59.999999999）
func ExceedsSeasonEnd(nextStart, seasonEndInclusive time.Time) bool {
	return nextStart.After(seasonEndInclusive)
}

// ExpandWeekly 将一次每周循环请求展开为有限的实例序列
// 返回序列按开始时间严格递增，首个元素即请求的原始时段
func ExpandWeekly(start, end, seasonEndInclusive time.Time) []Occurrence {
	occurrences := []Occurrence{{Start: start, End: end}}

	current := occurrences[0]
	for {
		next := NextOccurrence(current)
		if ExceedsSeasonEnd(next.Start, seasonEndInclusive) {
			break
		}
		occurrences = append(occurrences, next)
		current = next
	}

	return occurrences
}
