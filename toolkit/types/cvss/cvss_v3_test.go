package cvss

import (
	"testing"
)

func TestV3(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		Error[V3, V3Metric, *V3](t, []ErrorTestcase{
			{Vector: "", Error: true},
			{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Error: false},
			{Vector: "garbage", Error: true},
			{Vector: "CVSS:2.0/AV:N/AC:L/Au:N/C:N/I:N/A:C", Error: true},
			{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H/AV:N", Error: true},
			{Vector: "CVSS:3.1/AV:Z/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Error: true},
		})
	})

	t.Run("Roundtrip", func(t *testing.T) {
		Roundtrip[V3, V3Metric, *V3](t, []string{
			"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
			"CVSS:3.0/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N",
			"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H/E:P/RL:O/RC:C",
			"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:L/I:L/A:N/CR:H/IR:H/AR:H/MAV:N/MAC:L/MPR:N/MUI:N/MS:U/MC:H/MI:H/MA:H",
		})
	})

	t.Run("Score", func(t *testing.T) {
		t.Run("3.0", func(t *testing.T) {
			Score[V3, V3Metric, *V3](t, []ScoreTestcase{
				{Vector: "CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Score: 9.8},
			})
		})
		t.Run("3.1", func(t *testing.T) {
			Score[V3, V3Metric, *V3](t, []ScoreTestcase{
				{Vector: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", Score: 9.8},
				{Vector: "CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:N/I:N/A:N", Score: 0.0},
			})
		})
	})
}
