package details

import (
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"healthcard_backend/internals/configs"
	flowService "healthcard_backend/internals/features/form/flow/service"
	flowStore "healthcard_backend/internals/features/form/flow/store"
	levelService "healthcard_backend/internals/features/form/levels/service"
	formProgressService "healthcard_backend/internals/features/form/progress/service"
	questionService "healthcard_backend/internals/features/form/questions/service"
	reportService "healthcard_backend/internals/features/form/reports/service"
	responseService "healthcard_backend/internals/features/form/responses/service"
	activityService "healthcard_backend/internals/features/progress/daily_activities/service"
	pointService "healthcard_backend/internals/features/progress/points/service"
	rewardService "healthcard_backend/internals/features/progress/rewards/service"
)

// Services: singleton per proses. Dibuat sekali di SetupRoutes lalu
// dibagikan ke semua route detail.
type Services struct {
	DB        *gorm.DB
	Catalog   *questionService.Catalog
	Responses *responseService.ResponseStore
	Ledger    *pointService.Ledger
	Activity  *activityService.ActivityTracker
	Selector  *rewardService.Selector
	Flow      *flowService.FlowService
	Roadmap   *levelService.Roadmap
	Progress  *formProgressService.Reader
	Reports   *reportService.ReportService
}

// NewServices merakit service layer. rdb nil → session flow disimpan di memori
// (hanya cocok untuk satu instance).
func NewServices(db *gorm.DB, rdb *redis.Client) (*Services, error) {
	timeout := configs.PersistTimeout

	catalog := questionService.NewCatalog(db, timeout)
	responses := responseService.NewResponseStore(db, catalog, timeout)
	ledger := pointService.NewLedger(db, timeout)
	activity := activityService.NewActivityTracker(db, timeout)

	selector, err := rewardService.NewSelector(ledger, rewardService.DefaultTable, nil)
	if err != nil {
		return nil, err
	}

	roadmap := levelService.NewRoadmap(catalog, responses)

	var sessions flowStore.SessionStore
	if rdb != nil {
		sessions = flowStore.NewRedisStore(rdb, configs.FlowSessionTTL, 30*time.Second)
		log.Println("[FLOW] session store: redis")
	} else {
		sessions = flowStore.NewMemoryStore()
		log.Println("[FLOW] ⚠️ session store: memory (Redis tidak tersedia)")
	}

	return &Services{
		DB:        db,
		Catalog:   catalog,
		Responses: responses,
		Ledger:    ledger,
		Activity:  activity,
		Selector:  selector,
		Flow: &flowService.FlowService{
			Graphs:           catalog,
			Answers:          responses,
			Awarder:          ledger,
			Active:           roadmap,
			Activity:         activity,
			Store:            sessions,
			Timeout:          timeout,
			CompletionPoints: configs.ModuleCompletionPoints,
		},
		Roadmap:  roadmap,
		Progress: formProgressService.NewReader(catalog, responses),
		Reports:  reportService.NewReportService(catalog, responses),
	}, nil
}
