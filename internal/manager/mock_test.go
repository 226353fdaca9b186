package manager

import "testing"

func TestInitMockAfterLoadRejected(t *testing.T) {
	fake := &fakePipeline{}
	withFakePipeline(t, fake, nil)
	m := New(ManagerConfig{})
	if err := m.LoadPipeline(); err != nil {
		t.Fatal(err)
	}
	if err := m.InitMock(); err == nil {
		t.Fatal("mock mode accepted after load")
	}
}

func TestLoadAfterInitMockRejected(t *testing.T) {
	m := New(ManagerConfig{})
	if err := m.InitMock(); err != nil {
		t.Fatal(err)
	}
	if err := m.LoadPipeline(); err == nil {
		t.Fatal("load accepted in mock mode")
	}
}
