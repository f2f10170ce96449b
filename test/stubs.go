package test

import (
	"go.uber.org/mock/gomock"
	"social_pilot/test/mocks"
)

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func stubTexts(mockTexts *mocks.MockITexts) {
	mockTexts.EXPECT().Get(gomock.Any()).
		DoAndReturn(func(id string) string {
			return id
		}).AnyTimes()
	mockTexts.EXPECT().WithVals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id string, vals map[string]string) string {
			return dummyTextWithVals(id, vals)
		}).AnyTimes()
}

func dummyTextWithVals(id string, vals map[string]string) string {
	res := id
	for k, v := range vals {
		res += "\n" + k + "\t" + v
	}
	return res
}

func stubMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
	mockMetrics.EXPECT().CycleStarted(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().CycleFinished(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ActionPerformed(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().GeneratorCall(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().GeneratorFailure(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().CycleRunning(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().TotalProfiles(gomock.Any()).AnyTimes()
}
