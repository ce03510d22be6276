package export

import (
	"context"
	"sync"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

var (
	_ reportReader   = &reportReaderMock{}
	_ dataQuerier    = &dataQuerierMock{}
	_ notifier       = &notifierMock{}
	_ blobStore      = &blobStoreMock{}
	_ eventPublisher = &eventPublisherMock{}
)

type reportReaderMock struct {
	GetReportFunc func(ctx context.Context, id string) (*domain.Report, error)

	calls struct {
		GetReport []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetReport sync.RWMutex
}

func (mock *reportReaderMock) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	if mock.GetReportFunc == nil {
		panic("reportReaderMock.GetReportFunc: method is nil but reportReader.GetReport was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetReport.Lock()
	mock.calls.GetReport = append(mock.calls.GetReport, callInfo)
	mock.lockGetReport.Unlock()
	return mock.GetReportFunc(ctx, id)
}

type dataQuerierMock struct {
	QueryDataFunc func(ctx context.Context, datasetName string, filter domain.QueryFilter) ([]domain.Row, error)

	calls struct {
		QueryData []struct {
			Ctx         context.Context
			DatasetName string
			Filter      domain.QueryFilter
		}
	}
	lockQueryData sync.RWMutex
}

func (mock *dataQuerierMock) QueryData(ctx context.Context, datasetName string, filter domain.QueryFilter) ([]domain.Row, error) {
	if mock.QueryDataFunc == nil {
		panic("dataQuerierMock.QueryDataFunc: method is nil but dataQuerier.QueryData was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DatasetName string
		Filter      domain.QueryFilter
	}{Ctx: ctx, DatasetName: datasetName, Filter: filter}
	mock.lockQueryData.Lock()
	mock.calls.QueryData = append(mock.calls.QueryData, callInfo)
	mock.lockQueryData.Unlock()
	return mock.QueryDataFunc(ctx, datasetName, filter)
}

func (mock *dataQuerierMock) QueryDataCalls() []struct {
	Ctx         context.Context
	DatasetName string
	Filter      domain.QueryFilter
} {
	mock.lockQueryData.RLock()
	calls := mock.calls.QueryData
	mock.lockQueryData.RUnlock()
	return calls
}

type notifierMock struct {
	CreateNotificationFunc func(ctx context.Context, input data.CreateNotificationInput) (*domain.Notification, error)

	calls struct {
		CreateNotification []struct {
			Ctx   context.Context
			Input data.CreateNotificationInput
		}
	}
	lockCreateNotification sync.RWMutex
}

func (mock *notifierMock) CreateNotification(ctx context.Context, input data.CreateNotificationInput) (*domain.Notification, error) {
	if mock.CreateNotificationFunc == nil {
		panic("notifierMock.CreateNotificationFunc: method is nil but notifier.CreateNotification was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input data.CreateNotificationInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateNotification.Lock()
	mock.calls.CreateNotification = append(mock.calls.CreateNotification, callInfo)
	mock.lockCreateNotification.Unlock()
	return mock.CreateNotificationFunc(ctx, input)
}

func (mock *notifierMock) CreateNotificationCalls() []struct {
	Ctx   context.Context
	Input data.CreateNotificationInput
} {
	mock.lockCreateNotification.RLock()
	calls := mock.calls.CreateNotification
	mock.lockCreateNotification.RUnlock()
	return calls
}

type blobStoreMock struct {
	PutFunc func(ctx context.Context, key, contentType string, data []byte) (string, error)

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			ContentType string
			Data        []byte
		}
	}
	lockPut sync.RWMutex
}

func (mock *blobStoreMock) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if mock.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but blobStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		ContentType string
		Data        []byte
	}{Ctx: ctx, Key: key, ContentType: contentType, Data: data}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, contentType, data)
}

func (mock *blobStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	ContentType string
	Data        []byte
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

type eventPublisherMock struct {
	PublishFunc func(ctx context.Context, routingKey string, payload any) error

	calls struct {
		Publish []struct {
			Ctx        context.Context
			RoutingKey string
			Payload    any
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventPublisherMock) Publish(ctx context.Context, routingKey string, payload any) error {
	if mock.PublishFunc == nil {
		panic("eventPublisherMock.PublishFunc: method is nil but eventPublisher.Publish was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		RoutingKey string
		Payload    any
	}{Ctx: ctx, RoutingKey: routingKey, Payload: payload}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, routingKey, payload)
}

func (mock *eventPublisherMock) PublishCalls() []struct {
	Ctx        context.Context
	RoutingKey string
	Payload    any
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
