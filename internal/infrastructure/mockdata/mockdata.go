// Package mockdata holds the hard-coded business data the product ships
// with today: there is no real payment processing or call accounting yet,
// so earnings, history and packages are fixed fixtures.
package mockdata

import "github.com/vaanicall/vaani-backend/internal/domain/entity"

func Earnings() entity.Earnings {
	return entity.Earnings{
		Lifetime:  15750,
		Today:     850,
		ThisWeek:  3250,
		ThisMonth: 12400,
		Withdrawn: 12000,
	}
}

func CallHistory() []entity.CallRecord {
	return []entity.CallRecord{
		{ID: 1, CallerName: "Anonymous User", Date: "2025-05-27", Time: "14:30", Duration: "15 min", Earned: 375},
		{ID: 2, CallerName: "Anonymous User", Date: "2025-05-26", Time: "19:45", Duration: "28 min", Earned: 700},
	}
}

// CallerBalance is the starting caller wallet balance in rupees.
const CallerBalance = 50.00

func CoinPackages() []entity.CoinPackage {
	return []entity.CoinPackage{
		{ID: "starter", Coins: 100, Price: 49},
		{ID: "popular", Coins: 250, Price: 99},
		{ID: "value", Coins: 600, Price: 199},
		{ID: "mega", Coins: 1500, Price: 449},
	}
}

// SafetyTips rotate on the listener home banner.
func SafetyTips() []string {
	return []string{
		"Remember: Never share personal information during calls",
		"Take breaks between calls to maintain your well-being",
		"You can end any call that makes you uncomfortable",
		"Report any inappropriate behavior immediately",
	}
}
