package disaster_report

import (
	"net/http"
	"strings"
	"time"

	"directory-service/db"
	"directory-service/handlers"
	"directory-service/types"
	"directory-service/utils"
	"directory-service/utils/consts"
	"directory-service/utils/log"

	"github.com/gin-gonic/gin"
)

const resourceName = "report"

// handleListPaginated serves the paginated report list, newest first.
// page and limit fall back to their defaults when absent or non-numeric.
func handleListPaginated(c *gin.Context) {
	defer log.LogNTraceEnterExit("handleListPaginated", c)()
	page := utils.Atoi64OrDefault(c.Query(consts.PageParam), consts.DefaultPage)
	limit := utils.Atoi64OrDefault(c.Query(consts.LimitParam), consts.DefaultPageSize)

	findOpts := db.NewFindOptions().
		WithSort(db.NewSortBuilder().AddDescending(consts.CreatedAtField))
	if filter := statusFilter(c.Query(consts.StatusParam)); filter != nil {
		findOpts.WithFilter(filter)
	}
	total, reports, err := db.FindPaginated(c, findOpts, page, limit)
	if err != nil {
		handlers.ResponseInternalServerError(c, "failed to read reports", err)
		return
	}
	c.JSON(http.StatusOK, types.NewPagedResult(total, page, limit, reports))
}

// statusFilter narrows the report list to the requested statuses. A single
// value matches directly, a comma separated list matches any of them.
func statusFilter(raw string) *db.FilterBuilder {
	if raw == "" {
		return nil
	}
	statuses := strings.Split(raw, ",")
	if len(statuses) == 1 {
		return db.NewFilterBuilder().WithValue(consts.StatusField, statuses[0])
	}
	return db.NewFilterBuilder().WithIn(consts.StatusField, statuses)
}

// handleSetStatus transitions a report's status and stamps updatedAt. Any
// non-empty status value is accepted.
func handleSetStatus(c *gin.Context) {
	defer log.LogNTraceEnterExit("handleSetStatus", c)()
	id, ok := handlers.MustPathID(c, resourceName)
	if !ok {
		return
	}
	var req types.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.ResponseFailedToBindJson(c, err)
		return
	}
	if req.Status == "" {
		handlers.ResponseBadRequest(c, "status is required")
		return
	}
	res, err := db.UpdateSetByID(c, id, types.Entry{
		consts.StatusField:    req.Status,
		consts.UpdatedAtField: time.Now().UTC(),
	})
	if err != nil {
		handlers.ResponseInternalServerError(c, "failed to update status", err)
		return
	}
	if res.MatchedCount == 0 {
		handlers.ResponseDocumentNotFound(c, resourceName)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount})
}
