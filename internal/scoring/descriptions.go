package scoring

import (
	"fmt"

	"github.com/sejongbiz/backend/internal/domain"
)

// Human-readable factor descriptions. Wording is presentation; the tier
// thresholds are part of the engine's behavior and covered by tests.

func demandDescription(d domain.District) string {
	sales := d.CardSales / 1e9 // billions of KRW

	if d.Population > 20000 && sales > 15 {
		return fmt.Sprintf("인구 %d명, 월 카드매출 %.1f십억원으로 높은 소비 수요 예상", d.Population, sales)
	}
	if d.Population > 10000 {
		return fmt.Sprintf("인구 %d명으로 안정적인 수요 기반 보유", d.Population)
	}
	return fmt.Sprintf("인구 %d명, 특화 전략 필요", d.Population)
}

func competitionDescription(d domain.District) string {
	switch {
	case d.CompetitionIndex < 0.4:
		return "동종 업종 밀집도가 낮아 진입 기회 양호"
	case d.CompetitionIndex < 0.6:
		return "적정 수준의 경쟁 환경, 차별화 전략 권장"
	default:
		return "경쟁이 치열한 지역, 명확한 차별화 필수"
	}
}

func accessibilityDescription(d domain.District) string {
	if d.BRTStations > 2 && d.BikeStations > 15 {
		return fmt.Sprintf("BRT %d개소, 공공자전거 %d개소로 우수한 대중교통 접근성", d.BRTStations, d.BikeStations)
	}
	if d.BRTStations > 0 || d.BikeStations > 10 {
		return fmt.Sprintf("BRT %d개소, 공공자전거 %d개소로 양호한 접근성", d.BRTStations, d.BikeStations)
	}
	return "대중교통 인프라 발전 중, 자가용 의존도 높음"
}

func safetyDescription(d domain.District) string {
	switch {
	case d.SafetyIndex > 0.8:
		return "야간 유동인구 활성, 가로등·CCTV 양호"
	case d.SafetyIndex > 0.6:
		return "전반적으로 안전한 환경"
	default:
		return "야간 안전 관리 강화 필요 지역"
	}
}

func vacancyDescription(d domain.District) string {
	rate := d.VacancyRate
	switch {
	case rate < 10:
		return fmt.Sprintf("공실률 %.1f%%로 상권 안정, 신규 입주 공간 제한적", rate)
	case rate < 20:
		return fmt.Sprintf("공실률 %.1f%%로 입주 기회 양호, 임대료 협상 가능", rate)
	case rate < 30:
		return fmt.Sprintf("공실률 %.1f%%로 입주 용이, 상권 활성화 노력 필요", rate)
	default:
		return fmt.Sprintf("공실률 %.1f%%로 높음, 신중한 검토 필요", rate)
	}
}

func marketDescription(d domain.District) string {
	idx := d.MarketActivationIndex
	switch {
	case idx >= 70:
		return fmt.Sprintf("상권활성화지수 %.0f점으로 활발한 상권 형성", idx)
	case idx >= 50:
		return fmt.Sprintf("상권활성화지수 %.0f점으로 성장 중인 상권", idx)
	default:
		return fmt.Sprintf("상권활성화지수 %.0f점으로 발전 초기 단계", idx)
	}
}
