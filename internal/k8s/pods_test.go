package k8s

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/berge472/lazyk8s/internal/domain"
)

func TestPodToRecord(t *testing.T) {
	pod := corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: "web-1", Namespace: "staging"},
		Spec: corev1.PodSpec{
			NodeName: "node-a",
			Containers: []corev1.Container{
				{Name: "app", Image: "registry.local/app:v3"},
				{Name: "sidecar", Image: "registry.local/proxy:v1"},
			},
		},
		Status: corev1.PodStatus{
			Phase: corev1.PodRunning,
			PodIP: "10.1.2.3",
			ContainerStatuses: []corev1.ContainerStatus{
				{
					Name:         "app",
					Ready:        true,
					RestartCount: 4,
					State:        corev1.ContainerState{Running: &corev1.ContainerStateRunning{}},
				},
				{
					Name:  "sidecar",
					State: corev1.ContainerState{Waiting: &corev1.ContainerStateWaiting{Reason: "CrashLoopBackOff"}},
				},
			},
		},
	}

	rec := podToRecord(pod)

	if rec.Name != "web-1" || rec.Namespace != "staging" {
		t.Errorf("identity = %s/%s, want staging/web-1", rec.Namespace, rec.Name)
	}
	if rec.Phase != "Running" || rec.Node != "node-a" || rec.IP != "10.1.2.3" {
		t.Errorf("metadata = (%s, %s, %s)", rec.Phase, rec.Node, rec.IP)
	}
	if len(rec.Containers) != 2 || rec.Containers[0].Name != "app" || rec.Containers[1].Image != "registry.local/proxy:v1" {
		t.Errorf("containers = %+v", rec.Containers)
	}
	if len(rec.Statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(rec.Statuses))
	}
	if rec.Statuses[0].State != domain.StateRunning || !rec.Statuses[0].Ready || rec.Statuses[0].Restarts != 4 {
		t.Errorf("status[0] = %+v", rec.Statuses[0])
	}
	if rec.Statuses[1].State != domain.StateWaiting || rec.Statuses[1].Reason != "CrashLoopBackOff" {
		t.Errorf("status[1] = %+v", rec.Statuses[1])
	}
}

func TestPodToRecordTerminated(t *testing.T) {
	pod := corev1.Pod{
		Status: corev1.PodStatus{
			Phase: corev1.PodFailed,
			ContainerStatuses: []corev1.ContainerStatus{
				{State: corev1.ContainerState{Terminated: &corev1.ContainerStateTerminated{Reason: "OOMKilled"}}},
				{}, // no state reported at all
			},
		},
	}
	rec := podToRecord(pod)
	if rec.Statuses[0].State != domain.StateTerminated || rec.Statuses[0].Reason != "OOMKilled" {
		t.Errorf("status[0] = %+v", rec.Statuses[0])
	}
	if rec.Statuses[1].State != domain.StateUnknown {
		t.Errorf("status[1].State = %v, want unknown", rec.Statuses[1].State)
	}
}

func TestListPods(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "a", Namespace: "default"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "b", Namespace: "default"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "elsewhere", Namespace: "other"}},
	)
	c := &Client{clientset: clientset, namespace: "default"}

	pods, err := c.ListPods(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(pods) != 2 {
		t.Errorf("got %d pods, want 2 (namespace scoped)", len(pods))
	}
}

func TestDeletePod(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web-1", Namespace: "default"}},
	)
	c := &Client{clientset: clientset, namespace: "default"}

	if err := c.DeletePod(context.Background(), "web-1"); err != nil {
		t.Fatal(err)
	}
	pods, _ := c.ListPods(context.Background())
	if len(pods) != 0 {
		t.Errorf("pod still listed after delete: %v", pods)
	}
}
