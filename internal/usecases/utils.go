package usecases

import "strconv"

func formatGatewayTxID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
