package services

import (
	"WhereIsIt/internal/config"
	"WhereIsIt/internal/helpers"
	"WhereIsIt/internal/repository"
	"WhereIsIt/internal/storage"
	"context"
	"errors"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var ErrCleaningInProgress = errors.New("cleaning is in progress")

// Janitor removes photo blobs that no item points at any more, which is
// what deleting an item, box or unit leaves behind.
type Janitor struct {
	itemRepo      repository.ItemRepository
	store         storage.Store
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	itemRepo repository.ItemRepository,
	store storage.Store,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		itemRepo:      itemRepo,
		store:         store,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) tryBegin() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) finish() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}

// ForceStartCleanCycle runs one clean in the background right away.
func (j *Janitor) ForceStartCleanCycle() error {
	if !j.tryBegin() {
		return ErrCleaningInProgress
	}
	go func() {
		defer j.finish()
		j.startClean(context.Background(), true)
	}()
	return nil
}

func (j *Janitor) StartCleanCycle() error {
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	j.logService.Log.WithFields(logrus.Fields{"job": "clean", "cron": cronSchedule}).Debug("starting cleaning job")
	_, err := j.cron.AddFunc(cronSchedule, func() {
		if !j.tryBegin() {
			return
		}
		defer j.finish()
		j.startClean(context.Background(), false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return err
	}
	j.cron.Start()
	return nil
}

func (j *Janitor) StopClean() {
	<-j.cron.Stop().Done()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

// Clean runs one cycle synchronously and returns the number of removed blobs.
func (j *Janitor) Clean(ctx context.Context) (int, error) {
	if !j.tryBegin() {
		return 0, ErrCleaningInProgress
	}
	defer j.finish()
	return j.clean(ctx)
}

func (j *Janitor) startClean(ctx context.Context, forced bool) {
	logFields := logrus.Fields{"job": "clean", "status": "start"}
	if forced {
		logFields["status"] = "forced"
	} else {
		logFields["cron"] = j.configuration.Server.CleanConfig.Schedule
	}
	j.logService.Log.WithFields(logFields).Debug("cleaning orphaned photos")

	deleted, err := j.clean(ctx)
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("cleaning job failed")
		return
	}
	if deleted > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "success",
			"count":  deleted,
		}).Info("cleaning job finished")
	}
}

func (j *Janitor) clean(ctx context.Context) (int, error) {
	paths, err := j.itemRepo.FindPhotoPaths()
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		referenced[helpers.PhotoKeyFromURL(path)] = struct{}{}
	}

	keys, err := j.store.List(ctx, "items/")
	if err != nil {
		return 0, err
	}
	var deletedCount int
	for _, key := range keys {
		if _, ok := referenced[key]; ok {
			continue
		}
		if err = j.store.Delete(ctx, key); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "clean",
				"status": "error",
				"key":    key,
				"error":  err.Error(),
			}).Error("Failed to delete photo")
			continue
		}
		deletedCount++
	}
	return deletedCount, nil
}
