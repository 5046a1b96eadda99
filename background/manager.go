package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/KdbAzizul/rescuemesh-sos-service/messaging"
	"github.com/KdbAzizul/rescuemesh-sos-service/store"
)

// BackgroundManager is a struct for the sos service background manager
type BackgroundManager struct {
	store store.SOSStore

	publisher messaging.Publisher

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, database string, publisher messaging.Publisher, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      store.NewSOSStore(mongoClient, database),
		publisher:  publisher,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("sos-worker", 5)
	return m.worker.Launch()
}
