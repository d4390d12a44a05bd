package util

import "math"

// Round2 rounds to two decimal places, sending exact ties to the even digit.
func Round2(value float64) float64 {
	return math.RoundToEven(value*100) / 100
}

func CalculateAverage(waitingTimes, responseTimes, turnAroundTimes []int) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	proccessCount := float64(len(waitingTimes))
	if proccessCount == 0 {
		return
	}

	averageWaitingTime = Round2(float64(sum(waitingTimes)) / proccessCount)
	averageResponseTime = Round2(float64(sum(responseTimes)) / proccessCount)
	averageTurnAroundTime = Round2(float64(sum(turnAroundTimes)) / proccessCount)
	return
}

func sum(values []int) int {
	var total int
	for _, v := range values {
		total += v
	}
	return total
}
