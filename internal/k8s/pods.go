package k8s

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/berge472/lazyk8s/internal/domain"
)

func (c *Client) ListPods(ctx context.Context) ([]domain.PodRecord, error) {
	podList, err := c.clientset.CoreV1().Pods(c.namespace).List(ctx, metav1.ListOptions{
		Limit: 500,
	})
	if err != nil {
		return nil, classifyError(err, c.host)
	}

	pods := make([]domain.PodRecord, 0, len(podList.Items))
	for _, pod := range podList.Items {
		pods = append(pods, podToRecord(pod))
	}
	return pods, nil
}

func (c *Client) GetPodLogs(ctx context.Context, podName, containerName string, tailLines int64) (string, error) {
	opts := &corev1.PodLogOptions{
		TailLines: &tailLines,
	}
	if containerName != "" {
		opts.Container = containerName
	}
	result, err := c.clientset.CoreV1().Pods(c.namespace).GetLogs(podName, opts).Do(ctx).Raw()
	if err != nil {
		return "", classifyError(err, c.host)
	}
	return string(result), nil
}

func (c *Client) DeletePod(ctx context.Context, podName string) error {
	err := c.clientset.CoreV1().Pods(c.namespace).Delete(ctx, podName, metav1.DeleteOptions{})
	return classifyError(err, c.host)
}

// podToRecord flattens a corev1.Pod into the raw record the presentation
// layer derives from. Declared container order is preserved; status order
// follows the API's reporting order.
func podToRecord(pod corev1.Pod) domain.PodRecord {
	containers := make([]domain.ContainerSpec, 0, len(pod.Spec.Containers))
	for _, c := range pod.Spec.Containers {
		containers = append(containers, domain.ContainerSpec{Name: c.Name, Image: c.Image})
	}

	statuses := make([]domain.ContainerStatus, 0, len(pod.Status.ContainerStatuses))
	for _, cs := range pod.Status.ContainerStatuses {
		st, reason := containerState(cs)
		statuses = append(statuses, domain.ContainerStatus{
			Name:     cs.Name,
			Ready:    cs.Ready,
			Restarts: cs.RestartCount,
			State:    st,
			Reason:   reason,
		})
	}

	return domain.PodRecord{
		Name:       pod.Name,
		Namespace:  pod.Namespace,
		Phase:      string(pod.Status.Phase),
		Reason:     pod.Status.Reason,
		Node:       pod.Spec.NodeName,
		IP:         pod.Status.PodIP,
		CreatedAt:  pod.CreationTimestamp.Time,
		Containers: containers,
		Statuses:   statuses,
	}
}

func containerState(cs corev1.ContainerStatus) (domain.ContainerState, string) {
	switch {
	case cs.State.Running != nil:
		return domain.StateRunning, ""
	case cs.State.Waiting != nil:
		return domain.StateWaiting, cs.State.Waiting.Reason
	case cs.State.Terminated != nil:
		return domain.StateTerminated, cs.State.Terminated.Reason
	default:
		return domain.StateUnknown, ""
	}
}
